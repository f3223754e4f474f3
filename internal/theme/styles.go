package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/pitmaster/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(18)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Notice styles
var (
	StallNoticeStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorStall).
				Padding(0, 1)

	StallSoonNoticeStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorStallSoon).
				Padding(0, 1)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorSuggestion).
			Bold(true)

	NoticeTitleStyle = lipgloss.NewStyle().
				Bold(true)
)

// Hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Chart styles
var (
	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ProbeLineStyle = lipgloss.NewStyle().
			Foreground(ColorProbe)

	ResidualHighStyle = lipgloss.NewStyle().
				Foreground(ColorResidualHi)

	ResidualLowStyle = lipgloss.NewStyle().
				Foreground(ColorResidualLo)

	BandP10Style = lipgloss.NewStyle().
			Foreground(ColorBandP10)

	BandP50Style = lipgloss.NewStyle().
			Foreground(ColorBandP50)

	BandP90Style = lipgloss.NewStyle().
			Foreground(ColorBandP90)
)

// ConfidenceStyle returns the badge style for a confidence tier
func ConfidenceStyle(c domain.ConfidenceTier) lipgloss.Style {
	color := ColorMuted
	switch c {
	case domain.ConfidenceHigh:
		color = ColorConfidenceHigh
	case domain.ConfidenceModerate:
		color = ColorConfidenceModerate
	case domain.ConfidenceLow:
		color = ColorConfidenceLow
	case domain.ConfidenceVeryLow:
		color = ColorConfidenceVeryLow
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
