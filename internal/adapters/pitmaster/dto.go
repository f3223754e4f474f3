package pitmaster

import "time"

// Wire types mirror the service's snake_case JSON

type setupRequestDTO struct {
	AltitudeFt      float64    `json:"altitude_ft"`
	CutType         string     `json:"cut_type"`
	DinnerTime      *time.Time `json:"dinner_time,omitempty"`
	EquipmentType   string     `json:"equipment_type"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	MeatCategory    string     `json:"meat_category"`
	SmokerTempF     float64    `json:"smoker_temp_f"`
	TargetTempF     float64    `json:"target_temp_f"`
	ThicknessInches float64    `json:"thickness_inches"`
	WeightLbs       float64    `json:"weight_lbs"`
}

type readingRequestDTO struct {
	SmokerTempF *float64 `json:"smoker_temp_f,omitempty"`
	TempF       float64  `json:"temp_f"`
}

type lidOpenRequestDTO struct {
	DurationSeconds float64 `json:"duration_seconds"`
}

type wrapRequestDTO struct {
	WrapType string `json:"wrap_type"`
}

type finishRequestDTO struct {
	QualityNotes  string  `json:"quality_notes"`
	QualityRating *string `json:"quality_rating,omitempty"`
}

type predictionResponse struct {
	Confidence       string     `json:"confidence"`
	CurrentState     string     `json:"current_state"`
	P10Minutes       float64    `json:"p10_minutes"`
	P10Time          *time.Time `json:"p10_time"`
	P50Minutes       float64    `json:"p50_minutes"`
	P50Time          *time.Time `json:"p50_time"`
	P90Minutes       float64    `json:"p90_minutes"`
	P90Time          *time.Time `json:"p90_time"`
	ReadingsCount    int        `json:"readings_count"`
	StallProbability float64    `json:"stall_probability"`
}

type stateResponse struct {
	Confidence           string  `json:"confidence"`
	CurrentState         string  `json:"current_state"`
	ElapsedMinutes       float64 `json:"elapsed_minutes"`
	ReadingsCount        int     `json:"readings_count"`
	StallActive          bool    `json:"stall_active"`
	StallDurationMinutes float64 `json:"stall_duration_minutes"`
	WrapType             string  `json:"wrap_type"`
}

type backwardPlanResponse struct {
	DinnerTime              time.Time `json:"dinner_time"`
	EstimatedCookMinutesP90 float64   `json:"estimated_cook_minutes_p90"`
	FireStartTime           time.Time `json:"fire_start_time"`
	MeatOnTime              time.Time `json:"meat_on_time"`
	PreheatMinutes          float64   `json:"preheat_minutes"`
	RestMinutes             float64   `json:"rest_minutes"`
}

type setupResponse struct {
	BackwardPlan *backwardPlanResponse `json:"backward_plan"`
	Prediction   predictionResponse    `json:"prediction"`
	SessionID    string                `json:"session_id"`
}

type readingResponse struct {
	ElapsedMinutes float64            `json:"elapsed_minutes"`
	Prediction     predictionResponse `json:"prediction"`
	State          stateResponse      `json:"state"`
}

type wrapResponse struct {
	Message    string             `json:"message"`
	Prediction predictionResponse `json:"prediction"`
	WrapType   string             `json:"wrap_type"`
}

type reportResponse struct {
	ActualTemps               []float64 `json:"actual_temps"`
	FinalTempF                float64   `json:"final_temp_f"`
	LidOpensCount             int       `json:"lid_opens_count"`
	PredictedTemps            []float64 `json:"predicted_temps"`
	PredictionAccuracyMinutes float64   `json:"prediction_accuracy_minutes"`
	QualityNotes              string    `json:"quality_notes"`
	QualityRating             *string   `json:"quality_rating"`
	ReadingsCount             int       `json:"readings_count"`
	Residuals                 []float64 `json:"residuals"`
	SessionID                 string    `json:"session_id"`
	StallDurationMinutes      float64   `json:"stall_duration_minutes"`
	StallOccurred             bool      `json:"stall_occurred"`
	TotalCookMinutes          float64   `json:"total_cook_minutes"`
	WasWrapped                bool      `json:"was_wrapped"`
	WrapType                  string    `json:"wrap_type"`
}

type equipmentPresetResponse struct {
	EquipmentType     string  `json:"equipment_type"`
	InsulationFactor  float64 `json:"insulation_factor"`
	Name              string  `json:"name"`
	RecoveryTimeMin   float64 `json:"recovery_time_min"`
	TempDropOnLidOpen float64 `json:"temp_drop_on_lid_open"`
	TempVariance      float64 `json:"temp_variance"`
}
