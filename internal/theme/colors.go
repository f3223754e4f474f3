package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "208" // Orange - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Confidence colors
const (
	ColorConfidenceHigh     Color = "2"   // Green
	ColorConfidenceLow      Color = "214" // Amber
	ColorConfidenceModerate Color = "3"   // Yellow
	ColorConfidenceVeryLow  Color = "1"   // Red
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Notice colors
const (
	ColorStall      Color = "203" // Salmon - stall in progress
	ColorStallSoon  Color = "221" // Light yellow - stall approaching
	ColorSuggestion Color = "117" // Sky blue - wrap suggestion
)

// Accent colors
const (
	ColorHintKey Color = "226" // Yellow - key hints
	ColorSpinner Color = "205" // Pink
)

// Chart colors
const (
	ColorProbe      Color = "209" // Coral - probe temperature
	ColorResidualHi Color = "203" // Predicted too late
	ColorResidualLo Color = "75"  // Predicted too early
	ColorBandP10    Color = "2"   // Green - optimistic
	ColorBandP50    Color = "215" // Light orange - likely
	ColorBandP90    Color = "203" // Salmon - safe
)
