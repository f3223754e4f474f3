package storage

import "time"

// CookModel is the GORM model for the cooks table
type CookModel struct {
	CreatedAt     time.Time
	CutType       string     `gorm:"not null"`
	EquipmentType string     `gorm:"not null;default:'offset'"`
	FinishedAt    *time.Time `gorm:"default:null;index:idx_finished_at"`
	MeatCategory  string     `gorm:"not null"`
	SessionID     string     `gorm:"primaryKey"`
	StartedAt     time.Time  `gorm:"not null;index:idx_started_at"`
	TargetTempF   float64    `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (CookModel) TableName() string { return "cooks" }

// CookEventModel is the GORM model for recorded controller events
type CookEventModel struct {
	ID         string    `gorm:"primaryKey"`
	Kind       string    `gorm:"not null"`
	Payload    []byte    `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
	Seq        int       `gorm:"not null;uniqueIndex:idx_session_seq,priority:2"`
	SessionID  string    `gorm:"not null;uniqueIndex:idx_session_seq,priority:1"`
}

// TableName specifies the table name for GORM
func (CookEventModel) TableName() string { return "cook_events" }

// CookReportModel is the GORM model for post-cook reports.
// Series columns hold JSON arrays.
type CookReportModel struct {
	ActualTemps               string `gorm:"not null;default:'[]'"`
	CreatedAt                 time.Time
	FinalTempF                float64
	LidOpensCount             int
	PredictedTemps            string `gorm:"not null;default:'[]'"`
	PredictionAccuracyMinutes float64
	QualityNotes              string  `gorm:"not null;default:''"`
	QualityRating             *string `gorm:"default:null"`
	ReadingsCount             int
	Residuals                 string `gorm:"not null;default:'[]'"`
	SessionID                 string `gorm:"primaryKey"`
	StallDurationMinutes      float64
	StallOccurred             bool
	TotalCookMinutes          float64
	UpdatedAt                 time.Time
	WasWrapped                bool
	WrapType                  string `gorm:"not null;default:'none'"`
}

// TableName specifies the table name for GORM
func (CookReportModel) TableName() string { return "cook_reports" }

// cookWithCount is the scan target for cook listings
type cookWithCount struct {
	CookModel
	EventCount int
}
