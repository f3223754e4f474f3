package domain

// CutInfo holds display and default values for a cut
type CutInfo struct {
	Category         MeatCategory
	DefaultTargetF   float64
	DefaultThickness float64
	Label            string
}

// Cuts is the catalogue of supported cuts
var Cuts = map[CutType]CutInfo{
	CutBrisket:      {Label: "Brisket", Category: MeatBeef, DefaultTargetF: 203, DefaultThickness: 5.0},
	CutPorkButt:     {Label: "Pork Butt", Category: MeatPork, DefaultTargetF: 203, DefaultThickness: 6.0},
	CutPorkRibs:     {Label: "Pork Ribs", Category: MeatPork, DefaultTargetF: 195, DefaultThickness: 1.5},
	CutBeefRibs:     {Label: "Beef Ribs", Category: MeatBeef, DefaultTargetF: 203, DefaultThickness: 2.5},
	CutChickenWhole: {Label: "Whole Chicken", Category: MeatPoultry, DefaultTargetF: 165, DefaultThickness: 4.0},
	CutTurkeyBreast: {Label: "Turkey Breast", Category: MeatPoultry, DefaultTargetF: 165, DefaultThickness: 4.5},
	CutLegOfLamb:    {Label: "Leg of Lamb", Category: MeatLamb, DefaultTargetF: 145, DefaultThickness: 4.0},
}

// CutOrder is the display order of the catalogue
var CutOrder = []CutType{
	CutBrisket,
	CutPorkButt,
	CutPorkRibs,
	CutBeefRibs,
	CutChickenWhole,
	CutTurkeyBreast,
	CutLegOfLamb,
}

// NewSetupRequest returns a request prefilled with the defaults for the cut
func NewSetupRequest(cut CutType, weightLbs float64) SetupRequest {
	info := Cuts[cut]
	return SetupRequest{
		CutType:         cut,
		EquipmentType:   EquipmentOffset,
		MeatCategory:    info.Category,
		SmokerTempF:     DefaultSmokerTempF,
		TargetTempF:     info.DefaultTargetF,
		ThicknessInches: info.DefaultThickness,
		WeightLbs:       weightLbs,
	}
}
