package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/providers/gemini"
)

func (a *App) newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models Visionary calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models := gemini.New(nil).Models()
			if a.jsonOutput {
				return a.writeJSON(models)
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tOPERATION\tQUALITY\tNAME")
			for _, m := range models {
				quality := "-"
				if m.Operation == core.OperationGenerate {
					quality = "fast"
					if m.HighQuality {
						quality = "high"
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Operation, quality, m.DisplayName)
			}
			return w.Flush()
		},
	}
}
