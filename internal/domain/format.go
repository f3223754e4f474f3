package domain

import (
	"fmt"
	"math"
	"strings"
)

// FormatMinutes renders a duration in minutes as "45m" or "2h 5m"
func FormatMinutes(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}
	total := int(math.Round(minutes))
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Label returns a human readable tier name
func (c ConfidenceTier) Label() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceModerate:
		return "Moderate"
	case ConfidenceLow:
		return "Low"
	case ConfidenceVeryLow:
		return "Very Low"
	}
	return "Unknown"
}

// Label returns a human readable phase name
func (p CookPhase) Label() string {
	return humanize(string(p))
}

// Label returns a human readable wrap name
func (w WrapType) Label() string {
	if w == "" {
		return "None"
	}
	return humanize(string(w))
}

// Label returns a human readable rating
func (q QualityRating) Label() string {
	return humanize(string(q))
}

// humanize turns snake_case into Title Case
func humanize(s string) string {
	if s == "" {
		return "Unknown"
	}
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
