package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/logging"
)

// formBase holds what every dialog form shares: the huh form and its outcome
type formBase struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
}

func (f *formBase) Init() tea.Cmd {
	return f.form.Init()
}

// update forwards msg to the form and reports completion. esc cancels.
func (f *formBase) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		f.Completed = true
		f.Cancelled = true
		return nil
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
	case huh.StateAborted:
		f.Completed = true
		f.Cancelled = true
	}
	return cmd
}

func (f *formBase) View() string {
	if f.form == nil {
		return ""
	}
	return f.form.View()
}

// setupValues is the raw text entered in the setup form
type setupValues struct {
	AltitudeFt      string
	Cut             domain.CutType
	DinnerTime      string
	Equipment       domain.EquipmentType
	SmokerTempF     string
	TargetTempF     string
	ThicknessInches string
	WeightLbs       string
}

// SetupForm collects the parameters of a new cook
type SetupForm struct {
	formBase
	values setupValues
}

// NewSetupForm creates the setup form. presets may be empty, in which case
// the built-in equipment list is offered.
func NewSetupForm(presets []domain.EquipmentPreset) *SetupForm {
	sf := &SetupForm{
		values: setupValues{
			Cut:         domain.CutBrisket,
			Equipment:   domain.EquipmentOffset,
			SmokerTempF: formatNumber(domain.DefaultSmokerTempF),
		},
	}

	cutOptions := make([]huh.Option[domain.CutType], 0, len(domain.CutOrder))
	for _, cut := range domain.CutOrder {
		cutOptions = append(cutOptions, huh.NewOption(domain.Cuts[cut].Label, cut))
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.CutType]().
				Title("Cut").
				Options(cutOptions...).
				Value(&sf.values.Cut),
			huh.NewInput().
				Title("Weight (lbs)").
				Placeholder("12").
				Value(&sf.values.WeightLbs).
				Validate(requiredNumber("weight", 0.1, domain.MaxWeightLbs)),
			huh.NewSelect[domain.EquipmentType]().
				Title("Smoker").
				Options(equipmentOptions(presets)...).
				Value(&sf.values.Equipment),
			huh.NewInput().
				Title("Smoker temperature (°F)").
				Value(&sf.values.SmokerTempF).
				Validate(requiredNumber("smoker temperature", domain.MinSetupSmokerTempF, domain.MaxSetupSmokerTempF)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Target temperature (°F)").
				DescriptionFunc(func() string {
					return fmt.Sprintf("Leave empty for the %s default of %.0f°F",
						domain.Cuts[sf.values.Cut].Label, domain.Cuts[sf.values.Cut].DefaultTargetF)
				}, &sf.values.Cut).
				Value(&sf.values.TargetTempF).
				Validate(optionalNumber("target temperature", domain.MinTargetTempF, domain.MaxTargetTempF)),
			huh.NewInput().
				Title("Thickness (inches)").
				DescriptionFunc(func() string {
					return fmt.Sprintf("Leave empty for the %s default of %.1f in",
						domain.Cuts[sf.values.Cut].Label, domain.Cuts[sf.values.Cut].DefaultThickness)
				}, &sf.values.Cut).
				Value(&sf.values.ThicknessInches).
				Validate(optionalNumber("thickness", 0.1, domain.MaxThicknessInches)),
			huh.NewInput().
				Title("Dinner time (optional)").
				Description("HH:MM. Builds a plan for when to light the fire.").
				Placeholder("18:30").
				Value(&sf.values.DinnerTime).
				Validate(func(s string) error {
					_, err := parseDinnerTime(s, time.Now())
					return err
				}),
			huh.NewInput().
				Title("Altitude (ft, optional)").
				Value(&sf.values.AltitudeFt).
				Validate(optionalNumber("altitude", 0, domain.MaxAltitudeFt)),
		),
	)

	logging.Logger.Debug("Setup form created", "presets", len(presets))
	return sf
}

func (sf *SetupForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return sf, sf.update(msg)
}

// Request builds the setup request from the entered values
func (sf *SetupForm) Request(now time.Time) (domain.SetupRequest, error) {
	return sf.values.request(now)
}

func (v setupValues) request(now time.Time) (domain.SetupRequest, error) {
	weight, err := parseNumber(v.WeightLbs)
	if err != nil {
		return domain.SetupRequest{}, fmt.Errorf("weight: %w", err)
	}

	req := domain.NewSetupRequest(v.Cut, weight)
	req.EquipmentType = v.Equipment

	for _, f := range []struct {
		raw string
		dst *float64
	}{
		{v.SmokerTempF, &req.SmokerTempF},
		{v.TargetTempF, &req.TargetTempF},
		{v.ThicknessInches, &req.ThicknessInches},
		{v.AltitudeFt, &req.AltitudeFt},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		n, err := parseNumber(f.raw)
		if err != nil {
			return domain.SetupRequest{}, err
		}
		*f.dst = n
	}

	dinner, err := parseDinnerTime(v.DinnerTime, now)
	if err != nil {
		return domain.SetupRequest{}, err
	}
	req.DinnerTime = dinner

	return req, req.Validate()
}

func equipmentOptions(presets []domain.EquipmentPreset) []huh.Option[domain.EquipmentType] {
	if len(presets) == 0 {
		opts := make([]huh.Option[domain.EquipmentType], 0, len(domain.EquipmentTypes))
		for _, e := range domain.EquipmentTypes {
			opts = append(opts, huh.NewOption(strings.ToUpper(string(e)[:1])+string(e)[1:], e))
		}
		return opts
	}

	opts := make([]huh.Option[domain.EquipmentType], 0, len(presets))
	for _, p := range presets {
		label := p.Name
		if label == "" {
			label = string(p.EquipmentType)
		}
		opts = append(opts, huh.NewOption(label, p.EquipmentType))
	}
	return opts
}

// parseDinnerTime reads HH:MM as the next occurrence of that time after now.
// An empty string means no dinner time.
func parseDinnerTime(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return nil, fmt.Errorf("dinner time must look like 18:30")
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return &at, nil
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

func requiredNumber(name string, lo, hi float64) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", name)
		}
		return checkNumber(name, s, lo, hi)
	}
}

func optionalNumber(name string, lo, hi float64) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return checkNumber(name, s, lo, hi)
	}
}

func checkNumber(name, s string, lo, hi float64) error {
	n, err := parseNumber(s)
	if err != nil {
		return err
	}
	if n < lo || n > hi {
		return fmt.Errorf("%s must be between %s and %s", name, formatNumber(lo), formatNumber(hi))
	}
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
