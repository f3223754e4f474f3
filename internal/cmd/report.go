package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/renato0307/pitmaster/internal/ui"
)

// ReportCmd prints the report of a finished cook. The local journal is
// consulted first, then the prediction service.
type ReportCmd struct {
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
	SessionID string `arg:"" help:"Session ID of the cook"`
	Width     int    `help:"Width of the residual chart" default:"80"`
}

// Run executes the report command
func (r *ReportCmd) Run(cli *CLI) error {
	report, err := cli.Container.JournalService.Report(context.Background(), r.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	if r.Format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Cook %s\n\n", r.SessionID)
	fmt.Println(ui.RenderReport(report, r.Width))
	return nil
}
