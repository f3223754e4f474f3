package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/theme"
)

const (
	timelineChartHeight   = 8
	timelineChartBarWidth = 2
	timelineChartBarGap   = 1
	timelineChartMaxBars  = 40
)

// RenderTimelineChart draws the predicted minutes remaining after each
// reading as a stacked bar: P10 at the bottom, then the spread up to P50 and
// up to P90, so the bar height is P90 and the colored bands show the range.
// Only the latest readings that fit are shown.
func RenderTimelineChart(history []domain.PredictionHistoryPoint, width int) string {
	if len(history) < 2 {
		return theme.MutedStyle.Render("Need more readings for the timeline") + "\n"
	}

	maxBars := timelineChartMaxBars
	if width > 0 {
		maxBars = min(maxBars, max(width/(timelineChartBarWidth+timelineChartBarGap), 2))
	}
	if len(history) > maxBars {
		history = history[len(history)-maxBars:]
	}

	maxVal := 0.0
	for _, h := range history {
		maxVal = max(maxVal, h.P10, h.P50, h.P90)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	chartWidth := len(history) * (timelineChartBarWidth + timelineChartBarGap)
	chart := barchart.New(chartWidth, timelineChartHeight,
		barchart.WithStyles(theme.ChartAxisStyle, theme.ChartLabelStyle),
	)
	chart.SetBarWidth(timelineChartBarWidth)
	chart.SetBarGap(timelineChartBarGap)
	chart.SetMax(maxVal)

	for _, h := range history {
		p10 := max(h.P10, 0)
		p50 := max(h.P50, p10)
		p90 := max(h.P90, p50)
		chart.Push(barchart.BarData{
			Values: []barchart.BarValue{
				{Name: "P10", Value: p10, Style: theme.BandP10Style},
				{Name: "P50", Value: p50 - p10, Style: theme.BandP50Style},
				{Name: "P90", Value: p90 - p50, Style: theme.BandP90Style},
			},
		})
	}
	chart.Draw()

	first, last := history[0], history[len(history)-1]
	var sb strings.Builder
	sb.WriteString(theme.BandP10Style.Render("■"))
	sb.WriteString(theme.ChartLabelStyle.Render(" P10  "))
	sb.WriteString(theme.BandP50Style.Render("■"))
	sb.WriteString(theme.ChartLabelStyle.Render(" P50  "))
	sb.WriteString(theme.BandP90Style.Render("■"))
	sb.WriteString(theme.ChartLabelStyle.Render(fmt.Sprintf(" P90  (max %s)", domain.FormatMinutes(maxVal))))
	sb.WriteString("\n\n")
	sb.WriteString(chart.View())
	sb.WriteString("\n")
	sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("%s to %s elapsed, P50 %s → %s",
		domain.FormatMinutes(first.ElapsedMinutes), domain.FormatMinutes(last.ElapsedMinutes),
		domain.FormatMinutes(first.P50), domain.FormatMinutes(last.P50))))
	sb.WriteString("\n")
	return sb.String()
}
