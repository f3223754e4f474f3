package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ports"
)

const maxRetries = 3

// SQLiteJournal implements ports.CookJournal using GORM
type SQLiteJournal struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CookJournal = (*SQLiteJournal)(nil)

// gormLogger wraps the pitmaster logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PITMASTER_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteJournal opens (and migrates) the journal database at dbPath
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `history` read while a running cook is appending
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&CookModel{}, &CookEventModel{}, &CookReportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteJournal{db: db}, nil
}

// Close closes the database connection
func (j *SQLiteJournal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// StartCook implements CookRecorder.StartCook
func (j *SQLiteJournal) StartCook(ctx context.Context, record domain.CookRecord) error {
	model := domainToCookModel(record)
	if model.StartedAt.IsZero() {
		model.StartedAt = time.Now().UTC()
	}
	return withRetry(func() error {
		if err := j.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create cook: %w", err)
		}
		return nil
	}, maxRetries)
}

// AppendEvent implements CookRecorder.AppendEvent.
// Sequence numbers are assigned here, so entries for a session stay in arrival order.
func (j *SQLiteJournal) AppendEvent(ctx context.Context, entry domain.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	return withRetry(func() error {
		return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxSeq int
			if err := tx.Model(&CookEventModel{}).
				Where("session_id = ?", entry.SessionID).
				Select("COALESCE(MAX(seq), 0)").
				Scan(&maxSeq).Error; err != nil {
				return err
			}

			model := CookEventModel{
				ID:         entry.ID,
				Kind:       entry.Kind,
				Payload:    entry.Payload,
				RecordedAt: entry.RecordedAt,
				Seq:        maxSeq + 1,
				SessionID:  entry.SessionID,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to append event: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// MarkFinished implements CookRecorder.MarkFinished
func (j *SQLiteJournal) MarkFinished(ctx context.Context, sessionID string, report domain.Report) error {
	model, err := domainToReportModel(sessionID, report)
	if err != nil {
		return err
	}

	return withRetry(func() error {
		return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			result := tx.Model(&CookModel{}).
				Where("session_id = ?", sessionID).
				Update("finished_at", now)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrCookNotFound, sessionID)
			}

			if err := tx.Save(&model).Error; err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// GetCook implements CookHistoryReader.GetCook
func (j *SQLiteJournal) GetCook(ctx context.Context, sessionID string) (*domain.CookRecord, error) {
	var rows []cookWithCount
	err := withRetry(func() error {
		return j.cookQuery(ctx).Where("cooks.session_id = ?", sessionID).Limit(1).Scan(&rows).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrCookNotFound, sessionID)
	}
	row := rows[0]

	record := cookModelToDomain(row.CookModel, row.EventCount)
	return &record, nil
}

// ListCooks implements CookHistoryReader.ListCooks, newest first
func (j *SQLiteJournal) ListCooks(ctx context.Context) ([]domain.CookRecord, error) {
	var rows []cookWithCount
	err := withRetry(func() error {
		return j.cookQuery(ctx).Order("cooks.started_at DESC").Scan(&rows).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CookRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, cookModelToDomain(row.CookModel, row.EventCount))
	}
	return records, nil
}

// Events implements CookHistoryReader.Events
func (j *SQLiteJournal) Events(ctx context.Context, sessionID string) ([]domain.JournalEntry, error) {
	var models []CookEventModel
	err := withRetry(func() error {
		return j.db.WithContext(ctx).
			Where("session_id = ?", sessionID).
			Order("seq ASC").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, eventModelToDomain(m))
	}
	return entries, nil
}

// GetReport implements CookHistoryReader.GetReport
func (j *SQLiteJournal) GetReport(ctx context.Context, sessionID string) (*domain.Report, error) {
	var model CookReportModel
	err := withRetry(func() error {
		return j.db.WithContext(ctx).Where("session_id = ?", sessionID).Take(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no report for %s", domain.ErrCookNotFound, sessionID)
		}
		return nil, err
	}

	report, err := reportModelToDomain(model)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// cookQuery selects cooks joined with their event counts
func (j *SQLiteJournal) cookQuery(ctx context.Context) *gorm.DB {
	return j.db.WithContext(ctx).
		Model(&CookModel{}).
		Select("cooks.*, COUNT(cook_events.id) AS event_count").
		Joins("LEFT JOIN cook_events ON cook_events.session_id = cooks.session_id").
		Group("cooks.session_id")
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
