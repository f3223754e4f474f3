package session

import (
	"fmt"
	"math"

	"github.com/renato0307/pitmaster/internal/domain"
)

const (
	// WrapSuggestThresholdMinutes is the stall length that must be exceeded before a wrap is suggested
	WrapSuggestThresholdMinutes = 30.0
	// StallProbabilityNoticeThreshold is the probability at which an upcoming stall is announced
	StallProbabilityNoticeThreshold = 0.3
)

// ViewMode selects which screen renders the state
type ViewMode int

const (
	ViewSetup ViewMode = iota
	ViewSummary
	ViewDetailed
	ViewReport
)

func (m ViewMode) String() string {
	switch m {
	case ViewSetup:
		return "setup"
	case ViewSummary:
		return "summary"
	case ViewDetailed:
		return "detailed"
	case ViewReport:
		return "report"
	}
	return "unknown"
}

// Mode picks the screen for s. A finished cook shows its report until reset.
func Mode(s State) ViewMode {
	switch {
	case s.Report != nil:
		return ViewReport
	case !s.HasSession() || s.Prediction == nil:
		return ViewSetup
	case s.DetailedMode:
		return ViewDetailed
	default:
		return ViewSummary
	}
}

// SuggestWrap reports whether the operator should be offered a wrap:
// a stall is active, has lasted strictly longer than the threshold, and
// nothing is wrapped yet.
func SuggestWrap(s State) bool {
	if s.Status == nil {
		return false
	}
	return s.Status.StallActive &&
		s.Status.StallDurationMinutes > WrapSuggestThresholdMinutes &&
		!s.Status.WrapType.IsApplied()
}

// StallKind distinguishes an ongoing stall from an anticipated one
type StallKind int

const (
	StallActive StallKind = iota
	StallApproaching
)

// StallMessage is the notice shown about the stall
type StallMessage struct {
	Body            string
	DurationMinutes int
	Kind            StallKind
	ProbabilityPct  int
	Title           string
}

// StallNotice returns the stall message to show, if any. An active stall
// takes precedence over the probability of one.
func StallNotice(s State) (StallMessage, bool) {
	if s.Status != nil && s.Status.StallActive {
		minutes := int(math.Round(s.Status.StallDurationMinutes))
		return StallMessage{
			Kind:            StallActive,
			DurationMinutes: minutes,
			Title:           "Stall in progress",
			Body: fmt.Sprintf("Your meat has been in the stall for %d minutes. "+
				"This is normal, evaporative cooling is fighting the heat. Hang tight!", minutes),
		}, true
	}

	if s.Prediction == nil || s.Prediction.StallProbability < StallProbabilityNoticeThreshold {
		return StallMessage{}, false
	}

	pct := int(math.Round(s.Prediction.StallProbability * 100))
	return StallMessage{
		Kind:           StallApproaching,
		ProbabilityPct: pct,
		Title:          "Stall approaching",
		Body: fmt.Sprintf("%d%% chance of entering the stall soon. "+
			"The temperature may plateau for a while, this is expected.", pct),
	}, true
}

// WrapOption is one wrap choice offered to the operator
type WrapOption struct {
	Description string
	Label       string
	Type        domain.WrapType
}

// WrapOptions lists the wraps the operator can apply
func WrapOptions() []WrapOption {
	return []WrapOption{
		{Type: domain.WrapFoil, Label: "Foil", Description: "Fastest, softer bark"},
		{Type: domain.WrapButcherPaper, Label: "Butcher Paper", Description: "Balanced, keeps bark"},
		{Type: domain.WrapFoilBoat, Label: "Foil Boat", Description: "Moderate protection"},
	}
}
