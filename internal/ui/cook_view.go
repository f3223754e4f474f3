package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/session"
	"github.com/renato0307/pitmaster/internal/theme"
)

const (
	recentReadings  = 5
	sparklineHeight = 4
	timeLayout      = "15:04"
)

// RenderState renders s the way the cook screen would, without the header
// and key help. Used by commands that print a state once.
func RenderState(s session.State, width int) string {
	switch session.Mode(s) {
	case session.ViewReport:
		return RenderReport(*s.Report, width)
	case session.ViewSetup:
		return theme.MutedStyle.Render("No active cook") + "\n"
	}
	return renderCook(s, width)
}

// renderCook renders the summary or detailed cook screen for s
func renderCook(s session.State, width int) string {
	if s.Prediction == nil {
		return theme.MutedStyle.Render("No active cook")
	}

	var sb strings.Builder
	sb.WriteString(renderEstimate(*s.Prediction))
	sb.WriteString("\n")
	sb.WriteString(renderStatusLine(s))
	sb.WriteString("\n")

	if notice, ok := session.StallNotice(s); ok {
		sb.WriteString("\n")
		sb.WriteString(renderStallNotice(notice, width))
		sb.WriteString("\n")
	}
	if session.SuggestWrap(s) {
		sb.WriteString("\n")
		sb.WriteString(theme.SuggestionStyle.Render(fmt.Sprintf(
			"The stall has lasted %s. Wrapping now will push through it (press w).",
			domain.FormatMinutes(s.Status.StallDurationMinutes))))
		sb.WriteString("\n")
	}
	if s.BackwardPlan != nil {
		sb.WriteString("\n")
		sb.WriteString(renderBackwardPlan(*s.BackwardPlan))
	}

	if session.Mode(s) == session.ViewDetailed {
		sb.WriteString("\n")
		sb.WriteString(renderDetails(s, width))
	}
	return sb.String()
}

func renderEstimate(p domain.Prediction) string {
	ready := theme.ValueStyle.Render(domain.FormatMinutes(p.P50Minutes))
	if p.P50Time != nil {
		ready += theme.MutedStyle.Render(" (around " + p.P50Time.Local().Format(timeLayout) + ")")
	}
	rangeText := fmt.Sprintf("%s to %s", domain.FormatMinutes(p.P10Minutes), domain.FormatMinutes(p.P90Minutes))

	return field("Ready in", ready) + "\n" +
		field("Likely range", rangeText) + "\n" +
		field("Confidence", theme.ConfidenceStyle(p.Confidence).Render(p.Confidence.Label()))
}

func renderStatusLine(s session.State) string {
	phase := s.Prediction.CurrentState
	parts := []string{}
	if s.Status != nil {
		phase = s.Status.CurrentState
		parts = append(parts,
			"elapsed "+domain.FormatMinutes(s.Status.ElapsedMinutes),
			fmt.Sprintf("%d readings", s.Status.ReadingsCount),
			"wrap: "+s.Status.WrapType.Label(),
		)
	}
	line := field("Phase", theme.ValueStyle.Render(phase.Label()))
	if len(parts) > 0 {
		line += theme.MutedStyle.Render("  " + strings.Join(parts, " · "))
	}
	return line
}

func renderStallNotice(n session.StallMessage, width int) string {
	style := theme.StallNoticeStyle
	if n.Kind == session.StallApproaching {
		style = theme.StallSoonNoticeStyle
	}
	body := theme.NoticeTitleStyle.Render(n.Title) + "\n" + n.Body
	if width > 4 {
		style = style.Width(min(width-2, 72))
	}
	return style.Render(body)
}

func renderBackwardPlan(p domain.BackwardPlan) string {
	return theme.SubtitleStyle.Render("Plan") + "\n" +
		field("Light the fire", p.FireStartTime.Local().Format(timeLayout)) + "\n" +
		field("Meat on", p.MeatOnTime.Local().Format(timeLayout)) + "\n" +
		field("Dinner", p.DinnerTime.Local().Format(timeLayout)) + "\n"
}

// renderDetails adds the quantile table, the prediction timeline, the probe
// chart and recent readings
func renderDetails(s session.State, width int) string {
	p := *s.Prediction
	var sb strings.Builder

	sb.WriteString(theme.SubtitleStyle.Render("Prediction"))
	sb.WriteString("\n")
	for _, q := range []struct {
		label   string
		minutes float64
		at      *time.Time
	}{
		{"P10 (optimistic)", p.P10Minutes, p.P10Time},
		{"P50 (likely)", p.P50Minutes, p.P50Time},
		{"P90 (safe)", p.P90Minutes, p.P90Time},
	} {
		value := domain.FormatMinutes(q.minutes)
		if q.at != nil {
			value += "  " + theme.MutedStyle.Render(q.at.Local().Format(timeLayout))
		}
		sb.WriteString(field(q.label, value))
		sb.WriteString("\n")
	}
	sb.WriteString(field("Stall chance", fmt.Sprintf("%d%%", int(math.Round(p.StallProbability*100)))))
	sb.WriteString("\n")
	sb.WriteString(field("Readings used", fmt.Sprintf("%d", p.ReadingsCount)))
	sb.WriteString("\n")

	sb.WriteString("\n")
	sb.WriteString(theme.SubtitleStyle.Render("Timeline (minutes remaining)"))
	sb.WriteString("\n")
	sb.WriteString(RenderTimelineChart(s.PredictionHistory, width))

	if len(s.TempHistory) > 0 {
		sb.WriteString("\n")
		sb.WriteString(theme.SubtitleStyle.Render("Probe"))
		sb.WriteString("\n")
		sb.WriteString(renderProbeSparkline(s.TempHistory, width))
		sb.WriteString("\n")
		sb.WriteString(renderRecentReadings(s))
	}
	return sb.String()
}

func renderProbeSparkline(history []domain.HistoryPoint, width int) string {
	chartWidth := min(max(len(history), 10), max(width-4, 10))
	temps := make([]float64, 0, len(history))
	for _, h := range history {
		temps = append(temps, h.TempF)
	}

	sl := sparkline.New(chartWidth, sparklineHeight, sparkline.WithStyle(theme.ProbeLineStyle))
	sl.PushAll(temps)
	sl.Draw()

	last := history[len(history)-1]
	legend := theme.MutedStyle.Render(fmt.Sprintf("last %.0f°F at %s", last.TempF, domain.FormatMinutes(last.ElapsedMinutes)))
	return lipgloss.JoinVertical(lipgloss.Left, sl.View(), legend)
}

// renderRecentReadings lists the latest readings with the P50 recorded alongside each
func renderRecentReadings(s session.State) string {
	from := max(len(s.TempHistory)-recentReadings, 0)
	var sb strings.Builder
	for i := len(s.TempHistory) - 1; i >= from; i-- {
		h := s.TempHistory[i]
		line := fmt.Sprintf("%8s  %5.1f°F", domain.FormatMinutes(h.ElapsedMinutes), h.TempF)
		if i < len(s.PredictionHistory) {
			line += theme.MutedStyle.Render(fmt.Sprintf("  P50 %s", domain.FormatMinutes(s.PredictionHistory[i].P50)))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func field(label, value string) string {
	return theme.LabelStyle.Render(label) + value
}
