package storage

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/pitmaster/internal/domain"
)

// cookModelToDomain converts a CookModel (GORM) to domain.CookRecord
func cookModelToDomain(m CookModel, eventCount int) domain.CookRecord {
	return domain.CookRecord{
		CutType:       domain.CutType(m.CutType),
		EquipmentType: domain.EquipmentType(m.EquipmentType),
		EventCount:    eventCount,
		FinishedAt:    m.FinishedAt,
		MeatCategory:  domain.MeatCategory(m.MeatCategory),
		SessionID:     m.SessionID,
		StartedAt:     m.StartedAt,
		TargetTempF:   m.TargetTempF,
	}
}

// domainToCookModel converts a domain.CookRecord to CookModel (GORM)
func domainToCookModel(r domain.CookRecord) CookModel {
	return CookModel{
		CutType:       string(r.CutType),
		EquipmentType: string(r.EquipmentType),
		FinishedAt:    r.FinishedAt,
		MeatCategory:  string(r.MeatCategory),
		SessionID:     r.SessionID,
		StartedAt:     r.StartedAt,
		TargetTempF:   r.TargetTempF,
	}
}

// eventModelToDomain converts a CookEventModel (GORM) to domain.JournalEntry
func eventModelToDomain(m CookEventModel) domain.JournalEntry {
	return domain.JournalEntry{
		ID:         m.ID,
		Kind:       m.Kind,
		Payload:    m.Payload,
		RecordedAt: m.RecordedAt,
		Seq:        m.Seq,
		SessionID:  m.SessionID,
	}
}

// reportModelToDomain converts a CookReportModel (GORM) to domain.Report
func reportModelToDomain(m CookReportModel) (domain.Report, error) {
	report := domain.Report{
		FinalTempF:                m.FinalTempF,
		LidOpensCount:             m.LidOpensCount,
		PredictionAccuracyMinutes: m.PredictionAccuracyMinutes,
		QualityNotes:              m.QualityNotes,
		ReadingsCount:             m.ReadingsCount,
		SessionID:                 m.SessionID,
		StallDurationMinutes:      m.StallDurationMinutes,
		StallOccurred:             m.StallOccurred,
		TotalCookMinutes:          m.TotalCookMinutes,
		WasWrapped:                m.WasWrapped,
		WrapType:                  domain.WrapType(m.WrapType),
	}
	if m.QualityRating != nil {
		rating := domain.QualityRating(*m.QualityRating)
		report.QualityRating = &rating
	}

	series := []struct {
		raw string
		dst *[]float64
	}{
		{m.ActualTemps, &report.ActualTemps},
		{m.PredictedTemps, &report.PredictedTemps},
		{m.Residuals, &report.Residuals},
	}
	for _, s := range series {
		if err := json.Unmarshal([]byte(s.raw), s.dst); err != nil {
			return domain.Report{}, fmt.Errorf("failed to decode report series: %w", err)
		}
	}
	return report, nil
}

// domainToReportModel converts a domain.Report to CookReportModel (GORM)
func domainToReportModel(sessionID string, r domain.Report) (CookReportModel, error) {
	m := CookReportModel{
		FinalTempF:                r.FinalTempF,
		LidOpensCount:             r.LidOpensCount,
		PredictionAccuracyMinutes: r.PredictionAccuracyMinutes,
		QualityNotes:              r.QualityNotes,
		ReadingsCount:             r.ReadingsCount,
		SessionID:                 sessionID,
		StallDurationMinutes:      r.StallDurationMinutes,
		StallOccurred:             r.StallOccurred,
		TotalCookMinutes:          r.TotalCookMinutes,
		WasWrapped:                r.WasWrapped,
		WrapType:                  string(r.WrapType),
	}
	if r.QualityRating != nil {
		rating := string(*r.QualityRating)
		m.QualityRating = &rating
	}

	var err error
	if m.ActualTemps, err = encodeSeries(r.ActualTemps); err != nil {
		return CookReportModel{}, err
	}
	if m.PredictedTemps, err = encodeSeries(r.PredictedTemps); err != nil {
		return CookReportModel{}, err
	}
	if m.Residuals, err = encodeSeries(r.Residuals); err != nil {
		return CookReportModel{}, err
	}
	return m, nil
}

func encodeSeries(values []float64) (string, error) {
	if values == nil {
		values = []float64{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode report series: %w", err)
	}
	return string(data), nil
}
