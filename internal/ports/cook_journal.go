package ports

import (
	"context"

	"github.com/renato0307/pitmaster/internal/domain"
)

// CookRecorder records cooks and their events as they happen
type CookRecorder interface {
	AppendEvent(ctx context.Context, entry domain.JournalEntry) error
	MarkFinished(ctx context.Context, sessionID string, report domain.Report) error
	StartCook(ctx context.Context, record domain.CookRecord) error
}

// CookHistoryReader reads previously recorded cooks
type CookHistoryReader interface {
	Events(ctx context.Context, sessionID string) ([]domain.JournalEntry, error)
	GetCook(ctx context.Context, sessionID string) (*domain.CookRecord, error)
	GetReport(ctx context.Context, sessionID string) (*domain.Report, error)
	ListCooks(ctx context.Context) ([]domain.CookRecord, error)
}

// CookJournal is the composite interface of the local cook journal
type CookJournal interface {
	CookHistoryReader
	CookRecorder
	Close() error
}
