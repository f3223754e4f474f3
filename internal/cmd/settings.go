package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/pitmaster/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options" default:"1"`
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Environment variables PITMASTER_<SETTING> override the file, flags override both.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
