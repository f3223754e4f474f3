package domain

import "time"

// CookPhase is the inferred phase of a cook as reported by the prediction service
type CookPhase string

const (
	PhaseSetup             CookPhase = "setup"
	PhasePreheat           CookPhase = "preheat"
	PhaseEarlyCook         CookPhase = "early_cook"
	PhasePreStall          CookPhase = "pre_stall"
	PhaseStall             CookPhase = "stall"
	PhasePostStall         CookPhase = "post_stall"
	PhaseApproachingTarget CookPhase = "approaching_target"
	PhaseRest              CookPhase = "rest"
	PhaseDone              CookPhase = "done"
)

// CookPhases lists the phases in happy-path order
var CookPhases = []CookPhase{
	PhaseSetup,
	PhasePreheat,
	PhaseEarlyCook,
	PhasePreStall,
	PhaseStall,
	PhasePostStall,
	PhaseApproachingTarget,
	PhaseRest,
	PhaseDone,
}

// Order returns the position of the phase in the happy path, or -1 if unknown.
// Monotonicity is not enforced anywhere; the service is trusted.
func (p CookPhase) Order() int {
	for i, phase := range CookPhases {
		if phase == p {
			return i
		}
	}
	return -1
}

// ConfidenceTier is the coarse reliability label attached to a prediction
type ConfidenceTier string

const (
	ConfidenceVeryLow  ConfidenceTier = "very_low"
	ConfidenceLow      ConfidenceTier = "low"
	ConfidenceModerate ConfidenceTier = "moderate"
	ConfidenceHigh     ConfidenceTier = "high"
)

// Rank orders tiers: very_low < low < moderate < high. Unknown tiers rank below very_low.
func (c ConfidenceTier) Rank() int {
	switch c {
	case ConfidenceVeryLow:
		return 0
	case ConfidenceLow:
		return 1
	case ConfidenceModerate:
		return 2
	case ConfidenceHigh:
		return 3
	}
	return -1
}

// WrapType is the wrap intervention applied to the meat
type WrapType string

const (
	WrapNone         WrapType = "none"
	WrapFoil         WrapType = "foil"
	WrapButcherPaper WrapType = "butcher_paper"
	WrapFoilBoat     WrapType = "foil_boat"
)

// IsApplied reports whether an actual wrap is in place.
// An empty value is treated as no wrap.
func (w WrapType) IsApplied() bool {
	return w != WrapNone && w != ""
}

// Prediction is the latest estimate from the prediction service.
// It is always replaced wholesale, never merged.
type Prediction struct {
	Confidence       ConfidenceTier
	CurrentState     CookPhase
	P10Minutes       float64
	P10Time          *time.Time
	P50Minutes       float64
	P50Time          *time.Time
	P90Minutes       float64
	P90Time          *time.Time
	ReadingsCount    int
	StallProbability float64
}

// CookStatus is the latest authoritative session status
type CookStatus struct {
	Confidence           ConfidenceTier
	CurrentState         CookPhase
	ElapsedMinutes       float64
	ReadingsCount        int
	StallActive          bool
	StallDurationMinutes float64
	WrapType             WrapType
}

// BackwardPlan is a schedule computed backward from the desired dinner time
type BackwardPlan struct {
	DinnerTime              time.Time
	EstimatedCookMinutesP90 float64
	FireStartTime           time.Time
	MeatOnTime              time.Time
	PreheatMinutes          float64
	RestMinutes             float64
}

// Report is the post-cook summary produced once a session is finished
type Report struct {
	ActualTemps               []float64
	FinalTempF                float64
	LidOpensCount             int
	PredictedTemps            []float64
	PredictionAccuracyMinutes float64
	QualityNotes              string
	QualityRating             *QualityRating
	ReadingsCount             int
	Residuals                 []float64
	SessionID                 string
	StallDurationMinutes      float64
	StallOccurred             bool
	TotalCookMinutes          float64
	WasWrapped                bool
	WrapType                  WrapType
}

// EquipmentPreset describes the thermal behaviour of a smoker type
type EquipmentPreset struct {
	EquipmentType       EquipmentType
	InsulationFactor    float64
	Name                string
	RecoveryTimeMinutes float64
	TempDropOnLidOpen   float64
	TempVariance        float64
}

// HistoryPoint is one logged probe reading
type HistoryPoint struct {
	ElapsedMinutes float64
	TempF          float64
}

// PredictionHistoryPoint is the prediction quantiles recorded alongside a reading
type PredictionHistoryPoint struct {
	ElapsedMinutes float64
	P10            float64
	P50            float64
	P90            float64
}

// CookRecord is the local journal entry describing one cook
type CookRecord struct {
	CutType       CutType
	EquipmentType EquipmentType
	EventCount    int
	FinishedAt    *time.Time
	MeatCategory  MeatCategory
	SessionID     string
	StartedAt     time.Time
	TargetTempF   float64
}

// JournalEntry is one recorded controller event, stored in arrival order
type JournalEntry struct {
	ID         string
	Kind       string
	Payload    []byte
	RecordedAt time.Time
	Seq        int
	SessionID  string
}
