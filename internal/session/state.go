package session

import (
	"slices"
	"time"

	"github.com/renato0307/pitmaster/internal/domain"
)

// State is the aggregate root for the current cook. Absent values are nil
// pointers or empty strings; nothing uses sentinel values.
type State struct {
	BackwardPlan      *domain.BackwardPlan
	DetailedMode      bool
	Error             string
	Loading           bool
	Prediction        *domain.Prediction
	PredictionHistory []domain.PredictionHistoryPoint
	Report            *domain.Report
	SessionID         string
	Status            *domain.CookStatus
	TempHistory       []domain.HistoryPoint
}

// InitialState returns the empty aggregate a cook starts from
func InitialState() State {
	return State{}
}

// HasSession reports whether a session has been started
func (s State) HasSession() bool {
	return s.SessionID != ""
}

// Clone returns a deep copy so callers may modify it without affecting the controller
func (s State) Clone() State {
	out := s
	out.TempHistory = slices.Clone(s.TempHistory)
	out.PredictionHistory = slices.Clone(s.PredictionHistory)
	if s.BackwardPlan != nil {
		plan := *s.BackwardPlan
		out.BackwardPlan = &plan
	}
	if s.Prediction != nil {
		p := clonePrediction(*s.Prediction)
		out.Prediction = &p
	}
	if s.Status != nil {
		st := *s.Status
		out.Status = &st
	}
	if s.Report != nil {
		r := *s.Report
		r.ActualTemps = slices.Clone(r.ActualTemps)
		r.PredictedTemps = slices.Clone(r.PredictedTemps)
		r.Residuals = slices.Clone(r.Residuals)
		if r.QualityRating != nil {
			rating := *r.QualityRating
			r.QualityRating = &rating
		}
		out.Report = &r
	}
	return out
}

func clonePrediction(p domain.Prediction) domain.Prediction {
	for _, t := range []**time.Time{&p.P10Time, &p.P50Time, &p.P90Time} {
		if *t != nil {
			v := **t
			*t = &v
		}
	}
	return p
}
