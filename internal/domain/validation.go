package domain

import (
	"fmt"
	"math"
	"slices"
)

// Plausible probe range in °F
const (
	MinProbeTempF = 32.0
	MaxProbeTempF = 212.0
)

// Bounds accepted by the prediction service
const (
	MaxAltitudeFt       = 15000.0
	MaxLidOpenSeconds   = 600.0
	MaxSetupSmokerTempF = 400.0
	MaxSmokerTempF      = 500.0
	MaxTargetTempF      = 212.0
	MaxThicknessInches  = 12.0
	MaxWeightLbs        = 30.0
	MinLidOpenSeconds   = 1.0
	MinSetupSmokerTempF = 180.0
	MinSmokerTempF      = 100.0
	MinTargetTempF      = 140.0

	DefaultLidOpenSeconds = 30.0
	DefaultSmokerTempF    = 250.0
	DefaultTargetTempF    = 203.0
)

// ValidateProbeTemp checks that a logged meat temperature is within probe range (inclusive)
func ValidateProbeTemp(tempF float64) error {
	if math.IsNaN(tempF) || tempF < MinProbeTempF || tempF > MaxProbeTempF {
		return fmt.Errorf("%w: %.1f°F (allowed %.0f-%.0f°F)", ErrTempOutOfRange, tempF, MinProbeTempF, MaxProbeTempF)
	}
	return nil
}

// Validate checks a reading before it is sent
func (r ReadingRequest) Validate() error {
	if err := ValidateProbeTemp(r.TempF); err != nil {
		return err
	}
	if r.SmokerTempF != nil {
		if err := checkRange("smoker temperature", *r.SmokerTempF, MinSmokerTempF, MaxSmokerTempF); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLidOpenSeconds checks a lid-open duration
func ValidateLidOpenSeconds(seconds float64) error {
	return checkRange("lid open duration", seconds, MinLidOpenSeconds, MaxLidOpenSeconds)
}

// Validate checks that the wrap type is an actual wrap
func (w WrapType) Validate() error {
	switch w {
	case WrapFoil, WrapButcherPaper, WrapFoilBoat:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidWrapType, string(w))
}

// Validate checks quality feedback
func (r FinishRequest) Validate() error {
	if r.QualityRating != nil && !slices.Contains(QualityRatings, *r.QualityRating) {
		return fmt.Errorf("%w: unknown quality rating %q", ErrOutOfRange, string(*r.QualityRating))
	}
	return nil
}

// Validate checks a setup request against the service bounds. Cut and meat
// category are checked independently, as the service does.
func (r SetupRequest) Validate() error {
	if _, ok := Cuts[r.CutType]; !ok {
		return fmt.Errorf("%w: unknown cut %q", ErrInvalidSetup, string(r.CutType))
	}
	if !slices.Contains(MeatCategories, r.MeatCategory) {
		return fmt.Errorf("%w: unknown meat category %q", ErrInvalidSetup, string(r.MeatCategory))
	}
	if !slices.Contains(EquipmentTypes, r.EquipmentType) {
		return fmt.Errorf("%w: unknown equipment %q", ErrInvalidSetup, string(r.EquipmentType))
	}
	if r.WeightLbs <= 0 || r.WeightLbs > MaxWeightLbs {
		return fmt.Errorf("%w: weight must be in (0, %.0f] lbs", ErrInvalidSetup, MaxWeightLbs)
	}
	if r.ThicknessInches <= 0 || r.ThicknessInches > MaxThicknessInches {
		return fmt.Errorf("%w: thickness must be in (0, %.0f] inches", ErrInvalidSetup, MaxThicknessInches)
	}
	if err := checkRange("smoker temperature", r.SmokerTempF, MinSetupSmokerTempF, MaxSetupSmokerTempF); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	if err := checkRange("target temperature", r.TargetTempF, MinTargetTempF, MaxTargetTempF); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	if err := checkRange("altitude", r.AltitudeFt, 0, MaxAltitudeFt); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalidSetup)
	}
	return nil
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %s %.1f not in [%.0f, %.0f]", ErrOutOfRange, name, v, lo, hi)
	}
	return nil
}
