package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/pitmaster/internal/domain"
)

// PresetsCmd lists the equipment presets known to the prediction service
type PresetsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the presets command
func (p *PresetsCmd) Run(cli *CLI) error {
	presets, err := cli.Container.PresetService.ListPresets(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	if p.Format == "json" {
		data, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printPresets(presets)
	return nil
}

func printPresets(presets []domain.EquipmentPreset) {
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tINSULATION\tLID DROP\tRECOVERY\tVARIANCE")
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.0f°F\t%s\t±%.0f°F\n",
			p.EquipmentType, p.Name, p.InsulationFactor, p.TempDropOnLidOpen,
			domain.FormatMinutes(p.RecoveryTimeMinutes), p.TempVariance)
	}
	w.Flush()
}
