package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"

	"github.com/renato0307/pitmaster/internal/domain"
	"github.com/renato0307/pitmaster/internal/theme"
)

const (
	residualChartHeight   = 6
	residualChartBarWidth = 2
	residualChartBarGap   = 1
	residualChartMaxBars  = 40
)

// RenderReport renders a finished cook report.
// This is used by both the TUI and CLI to ensure consistent formatting.
func RenderReport(r domain.Report, width int) string {
	var sb strings.Builder

	sb.WriteString(theme.SubtitleStyle.Render("Cook complete"))
	sb.WriteString("\n")
	sb.WriteString(field("Total time", theme.ValueStyle.Render(domain.FormatMinutes(r.TotalCookMinutes))))
	sb.WriteString("\n")
	sb.WriteString(field("Final temp", fmt.Sprintf("%.1f°F", r.FinalTempF)))
	sb.WriteString("\n")
	sb.WriteString(field("Readings", fmt.Sprintf("%d", r.ReadingsCount)))
	sb.WriteString("\n")
	sb.WriteString(field("Lid opens", fmt.Sprintf("%d", r.LidOpensCount)))
	sb.WriteString("\n")

	stall := "no"
	if r.StallOccurred {
		stall = "yes, " + domain.FormatMinutes(r.StallDurationMinutes)
	}
	sb.WriteString(field("Stall", stall))
	sb.WriteString("\n")

	wrap := "no"
	if r.WasWrapped {
		wrap = r.WrapType.Label()
	}
	sb.WriteString(field("Wrapped", wrap))
	sb.WriteString("\n")
	sb.WriteString(field("Prediction error", fmt.Sprintf("±%s", domain.FormatMinutes(math.Abs(r.PredictionAccuracyMinutes)))))
	sb.WriteString("\n")

	if r.QualityRating != nil {
		sb.WriteString(field("Quality", r.QualityRating.Label()))
		sb.WriteString("\n")
	}
	if r.QualityNotes != "" {
		sb.WriteString(field("Notes", r.QualityNotes))
		sb.WriteString("\n")
	}

	if len(r.Residuals) > 0 {
		sb.WriteString("\n")
		sb.WriteString(RenderResidualChart(r.Residuals, width))
	}
	return sb.String()
}

// RenderResidualChart draws one bar per reading with the magnitude of the
// prediction residual, colored by its sign. Only the latest readings that fit
// are shown.
func RenderResidualChart(residuals []float64, width int) string {
	maxBars := residualChartMaxBars
	if width > 0 {
		maxBars = min(maxBars, max(width/(residualChartBarWidth+residualChartBarGap), 1))
	}
	if len(residuals) > maxBars {
		residuals = residuals[len(residuals)-maxBars:]
	}

	maxVal := 0.0
	for _, v := range residuals {
		maxVal = max(maxVal, math.Abs(v))
	}
	if maxVal == 0 {
		maxVal = 1
	}

	legend := theme.ChartLabelStyle.Render("Residuals (°F): ") +
		theme.ResidualHighStyle.Render("■") +
		theme.ChartLabelStyle.Render(" above prediction  ") +
		theme.ResidualLowStyle.Render("■") +
		theme.ChartLabelStyle.Render(fmt.Sprintf(" below prediction  (max %.1f)", maxVal))

	chartWidth := len(residuals) * (residualChartBarWidth + residualChartBarGap)
	chart := barchart.New(chartWidth, residualChartHeight,
		barchart.WithStyles(theme.ChartAxisStyle, theme.ChartLabelStyle),
	)
	chart.SetBarWidth(residualChartBarWidth)
	chart.SetBarGap(residualChartBarGap)
	chart.SetMax(maxVal)

	for _, v := range residuals {
		style := theme.ResidualHighStyle
		if v < 0 {
			style = theme.ResidualLowStyle
		}
		chart.Push(barchart.BarData{
			Values: []barchart.BarValue{{Name: "residual", Value: math.Abs(v), Style: style}},
		})
	}
	chart.Draw()

	return legend + "\n\n" + chart.View()
}
