package ports

import (
	"context"

	"github.com/renato0307/pitmaster/internal/domain"
)

// PredictionReader fetches the latest prediction for a session
type PredictionReader interface {
	GetPrediction(ctx context.Context, sessionID string) (domain.Prediction, error)
}

// CookSessionAPI drives a cook session on the prediction service
type CookSessionAPI interface {
	PredictionReader

	ApplyWrap(ctx context.Context, sessionID string, wrapType domain.WrapType) (domain.WrapResult, error)
	FinishSession(ctx context.Context, sessionID string, req domain.FinishRequest) (domain.Report, error)
	GetState(ctx context.Context, sessionID string) (domain.CookStatus, error)
	LidOpened(ctx context.Context, sessionID string, durationSeconds float64) error
	LogReading(ctx context.Context, sessionID string, req domain.ReadingRequest) (domain.ReadingResult, error)
	StartSession(ctx context.Context, req domain.SetupRequest) (domain.SetupResult, error)
}

// ReportReader fetches finished-cook reports
type ReportReader interface {
	GetReport(ctx context.Context, sessionID string) (domain.Report, error)
}

// EquipmentCatalog lists equipment presets
type EquipmentCatalog interface {
	ListEquipmentPresets(ctx context.Context) ([]domain.EquipmentPreset, error)
}

// CookAPI is the composite interface of the remote prediction service
type CookAPI interface {
	CookSessionAPI
	EquipmentCatalog
	PredictionReader
	ReportReader
}
