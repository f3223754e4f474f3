package domain

import "time"

// MeatCategory is the broad kind of meat being cooked
type MeatCategory string

const (
	MeatBeef    MeatCategory = "beef"
	MeatPork    MeatCategory = "pork"
	MeatPoultry MeatCategory = "poultry"
	MeatLamb    MeatCategory = "lamb"
)

// MeatCategories lists every supported meat category
var MeatCategories = []MeatCategory{MeatBeef, MeatPork, MeatPoultry, MeatLamb}

// CutType is the specific cut being cooked
type CutType string

const (
	CutBrisket      CutType = "brisket"
	CutPorkButt     CutType = "pork_butt"
	CutPorkRibs     CutType = "pork_ribs"
	CutBeefRibs     CutType = "beef_ribs"
	CutChickenWhole CutType = "chicken_whole"
	CutTurkeyBreast CutType = "turkey_breast"
	CutLegOfLamb    CutType = "leg_of_lamb"
)

// EquipmentType is the kind of smoker in use
type EquipmentType string

const (
	EquipmentOffset EquipmentType = "offset"
	EquipmentPellet EquipmentType = "pellet"
	EquipmentKamado EquipmentType = "kamado"
	EquipmentWSM    EquipmentType = "wsm"
	EquipmentCustom EquipmentType = "custom"
)

// EquipmentTypes lists every supported equipment type
var EquipmentTypes = []EquipmentType{
	EquipmentOffset,
	EquipmentPellet,
	EquipmentKamado,
	EquipmentWSM,
	EquipmentCustom,
}

// QualityRating is the operator's verdict on the finished cook
type QualityRating string

const (
	QualityExcellent QualityRating = "excellent"
	QualityGood      QualityRating = "good"
	QualityFair      QualityRating = "fair"
	QualityPoor      QualityRating = "poor"
)

// QualityRatings lists every rating, best first
var QualityRatings = []QualityRating{QualityExcellent, QualityGood, QualityFair, QualityPoor}

// SetupRequest holds the parameters for starting a cook session
type SetupRequest struct {
	AltitudeFt      float64
	CutType         CutType
	DinnerTime      *time.Time
	EquipmentType   EquipmentType
	Latitude        *float64
	Longitude       *float64
	MeatCategory    MeatCategory
	SmokerTempF     float64
	TargetTempF     float64
	ThicknessInches float64
	WeightLbs       float64
}

// ReadingRequest holds one probe reading
type ReadingRequest struct {
	SmokerTempF *float64
	TempF       float64
}

// FinishRequest holds the optional quality feedback given when finishing
type FinishRequest struct {
	QualityNotes  string
	QualityRating *QualityRating
}

// SetupResult is the service response to a session start
type SetupResult struct {
	BackwardPlan *BackwardPlan
	Prediction   Prediction
	SessionID    string
}

// ReadingResult is the service response to a logged reading
type ReadingResult struct {
	ElapsedMinutes float64
	Prediction     Prediction
	Status         CookStatus
}

// WrapResult is the service response to an applied wrap
type WrapResult struct {
	Message    string
	Prediction Prediction
	WrapType   WrapType
}
