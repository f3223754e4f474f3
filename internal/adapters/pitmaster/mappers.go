package pitmaster

import "github.com/renato0307/pitmaster/internal/domain"

func toSetupRequestDTO(r domain.SetupRequest) setupRequestDTO {
	return setupRequestDTO{
		AltitudeFt:      r.AltitudeFt,
		CutType:         string(r.CutType),
		DinnerTime:      r.DinnerTime,
		EquipmentType:   string(r.EquipmentType),
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		MeatCategory:    string(r.MeatCategory),
		SmokerTempF:     r.SmokerTempF,
		TargetTempF:     r.TargetTempF,
		ThicknessInches: r.ThicknessInches,
		WeightLbs:       r.WeightLbs,
	}
}

func toFinishRequestDTO(r domain.FinishRequest) finishRequestDTO {
	dto := finishRequestDTO{QualityNotes: r.QualityNotes}
	if r.QualityRating != nil {
		rating := string(*r.QualityRating)
		dto.QualityRating = &rating
	}
	return dto
}

func (p predictionResponse) toDomain() domain.Prediction {
	return domain.Prediction{
		Confidence:       domain.ConfidenceTier(p.Confidence),
		CurrentState:     domain.CookPhase(p.CurrentState),
		P10Minutes:       p.P10Minutes,
		P10Time:          p.P10Time,
		P50Minutes:       p.P50Minutes,
		P50Time:          p.P50Time,
		P90Minutes:       p.P90Minutes,
		P90Time:          p.P90Time,
		ReadingsCount:    p.ReadingsCount,
		StallProbability: p.StallProbability,
	}
}

func (s stateResponse) toDomain() domain.CookStatus {
	return domain.CookStatus{
		Confidence:           domain.ConfidenceTier(s.Confidence),
		CurrentState:         domain.CookPhase(s.CurrentState),
		ElapsedMinutes:       s.ElapsedMinutes,
		ReadingsCount:        s.ReadingsCount,
		StallActive:          s.StallActive,
		StallDurationMinutes: s.StallDurationMinutes,
		WrapType:             domain.WrapType(s.WrapType),
	}
}

func (b *backwardPlanResponse) toDomain() *domain.BackwardPlan {
	if b == nil {
		return nil
	}
	return &domain.BackwardPlan{
		DinnerTime:              b.DinnerTime,
		EstimatedCookMinutesP90: b.EstimatedCookMinutesP90,
		FireStartTime:           b.FireStartTime,
		MeatOnTime:              b.MeatOnTime,
		PreheatMinutes:          b.PreheatMinutes,
		RestMinutes:             b.RestMinutes,
	}
}

func (r setupResponse) toDomain() domain.SetupResult {
	return domain.SetupResult{
		BackwardPlan: r.BackwardPlan.toDomain(),
		Prediction:   r.Prediction.toDomain(),
		SessionID:    r.SessionID,
	}
}

func (r readingResponse) toDomain() domain.ReadingResult {
	return domain.ReadingResult{
		ElapsedMinutes: r.ElapsedMinutes,
		Prediction:     r.Prediction.toDomain(),
		Status:         r.State.toDomain(),
	}
}

func (r wrapResponse) toDomain() domain.WrapResult {
	return domain.WrapResult{
		Message:    r.Message,
		Prediction: r.Prediction.toDomain(),
		WrapType:   domain.WrapType(r.WrapType),
	}
}

func (r reportResponse) toDomain() domain.Report {
	report := domain.Report{
		ActualTemps:               r.ActualTemps,
		FinalTempF:                r.FinalTempF,
		LidOpensCount:             r.LidOpensCount,
		PredictedTemps:            r.PredictedTemps,
		PredictionAccuracyMinutes: r.PredictionAccuracyMinutes,
		QualityNotes:              r.QualityNotes,
		ReadingsCount:             r.ReadingsCount,
		Residuals:                 r.Residuals,
		SessionID:                 r.SessionID,
		StallDurationMinutes:      r.StallDurationMinutes,
		StallOccurred:             r.StallOccurred,
		TotalCookMinutes:          r.TotalCookMinutes,
		WasWrapped:                r.WasWrapped,
		WrapType:                  domain.WrapType(r.WrapType),
	}
	if r.QualityRating != nil {
		rating := domain.QualityRating(*r.QualityRating)
		report.QualityRating = &rating
	}
	return report
}

func (p equipmentPresetResponse) toDomain() domain.EquipmentPreset {
	return domain.EquipmentPreset{
		EquipmentType:       domain.EquipmentType(p.EquipmentType),
		InsulationFactor:    p.InsulationFactor,
		Name:                p.Name,
		RecoveryTimeMinutes: p.RecoveryTimeMin,
		TempDropOnLidOpen:   p.TempDropOnLidOpen,
		TempVariance:        p.TempVariance,
	}
}
