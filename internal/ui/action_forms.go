package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
)

// ReadingForm asks for a probe reading and, optionally, the smoker temperature
type ReadingForm struct {
	formBase
	smokerTempF string
	tempF       string
}

// NewReadingForm creates the reading form
func NewReadingForm() *ReadingForm {
	rf := &ReadingForm{}
	rf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Probe temperature (°F)").
				Placeholder("165").
				Value(&rf.tempF).
				Validate(requiredNumber("probe temperature", domain.MinProbeTempF, domain.MaxProbeTempF)),
			huh.NewInput().
				Title("Smoker temperature (°F, optional)").
				Value(&rf.smokerTempF).
				Validate(optionalNumber("smoker temperature", domain.MinSmokerTempF, domain.MaxSmokerTempF)),
		),
	)
	return rf
}

func (rf *ReadingForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return rf, rf.update(msg)
}

// Reading returns the entered values
func (rf *ReadingForm) Reading() (float64, *float64, error) {
	temp, err := parseNumber(rf.tempF)
	if err != nil {
		return 0, nil, err
	}
	if strings.TrimSpace(rf.smokerTempF) == "" {
		return temp, nil, nil
	}
	smoker, err := parseNumber(rf.smokerTempF)
	if err != nil {
		return 0, nil, err
	}
	return temp, &smoker, nil
}

// WrapForm offers the wrap choices
type WrapForm struct {
	formBase
	wrapType domain.WrapType
}

// NewWrapForm creates the wrap picker
func NewWrapForm() *WrapForm {
	wf := &WrapForm{wrapType: domain.WrapButcherPaper}

	options := make([]huh.Option[domain.WrapType], 0, 3)
	for _, o := range session.WrapOptions() {
		options = append(options, huh.NewOption(o.Label+" · "+o.Description, o.Type))
	}

	wf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.WrapType]().
				Title("Wrap with").
				Options(options...).
				Value(&wf.wrapType),
		),
	)
	return wf
}

func (wf *WrapForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return wf, wf.update(msg)
}

// WrapType returns the chosen wrap
func (wf *WrapForm) WrapType() domain.WrapType {
	return wf.wrapType
}

// FinishForm collects the optional quality feedback
type FinishForm struct {
	formBase
	confirmed bool
	notes     string
	rating    domain.QualityRating
}

// NewFinishForm creates the finish form
func NewFinishForm() *FinishForm {
	ff := &FinishForm{confirmed: true}

	options := []huh.Option[domain.QualityRating]{huh.NewOption("Skip", domain.QualityRating(""))}
	for _, r := range domain.QualityRatings {
		options = append(options, huh.NewOption(r.Label(), r))
	}

	ff.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.QualityRating]().
				Title("How did it turn out?").
				Options(options...).
				Value(&ff.rating),
			huh.NewText().
				Title("Notes (optional)").
				CharLimit(500).
				Value(&ff.notes),
			huh.NewConfirm().
				Title("Finish this cook?").
				Affirmative("Finish").
				Negative("Keep cooking").
				Value(&ff.confirmed),
		),
	)
	return ff
}

func (ff *FinishForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := ff.update(msg)
	if ff.Completed && !ff.confirmed {
		ff.Cancelled = true
	}
	return ff, cmd
}

// Request returns the finish request
func (ff *FinishForm) Request() domain.FinishRequest {
	req := domain.FinishRequest{QualityNotes: strings.TrimSpace(ff.notes)}
	if ff.rating != "" {
		rating := ff.rating
		req.QualityRating = &rating
	}
	return req
}
