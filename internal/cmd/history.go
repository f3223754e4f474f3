package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/pitmaster/internal/domain"
)

const historyTimeLayout = "2006-01-02 15:04"

// HistoryCmd lists the cooks in the local journal
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	cooks, err := cli.Container.JournalService.ListCooks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list cooks: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(cooks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printHistory(cooks)
	return nil
}

func printHistory(cooks []domain.CookRecord) {
	if len(cooks) == 0 {
		fmt.Println("No cooks recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tCUT\tEQUIPMENT\tSTARTED\tFINISHED\tEVENTS")
	for _, c := range cooks {
		cut := "-"
		if info, ok := domain.Cuts[c.CutType]; ok {
			cut = info.Label
		}
		equipment := string(c.EquipmentType)
		if equipment == "" {
			equipment = "-"
		}
		finished := "in progress"
		if c.FinishedAt != nil {
			finished = c.FinishedAt.Local().Format(historyTimeLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			c.SessionID, cut, equipment,
			c.StartedAt.Local().Format(historyTimeLayout), finished, c.EventCount)
	}
	w.Flush()
}
