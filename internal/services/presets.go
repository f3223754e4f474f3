package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ports"
)

// PresetService lists equipment presets. The catalogue is fetched once per
// process; failed fetches are not cached.
type PresetService struct {
	catalog ports.EquipmentCatalog
	mu      sync.Mutex
	presets []domain.EquipmentPreset
}

// NewPresetService creates a new PresetService
func NewPresetService(catalog ports.EquipmentCatalog) *PresetService {
	return &PresetService{catalog: catalog}
}

// ListPresets returns the equipment presets
func (s *PresetService) ListPresets(ctx context.Context) ([]domain.EquipmentPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presets != nil {
		return slices.Clone(s.presets), nil
	}

	presets, err := s.catalog.ListEquipmentPresets(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list equipment presets", "error", err)
		return nil, fmt.Errorf("failed to list equipment presets: %w", err)
	}
	if presets == nil {
		presets = []domain.EquipmentPreset{}
	}

	logging.Logger.Debug("Equipment presets loaded", "count", len(presets))
	s.presets = presets
	return slices.Clone(presets), nil
}
