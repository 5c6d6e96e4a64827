package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"timescore/internal/engine"
	"timescore/internal/ui"
)

func newGradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Show the grade table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScore, "Grade Table"))
			for _, g := range engine.GradeOrder {
				info, err := engine.LookupGrade(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-14s %s %s\n",
					ui.GradeText(string(g)),
					fmt.Sprintf("%+.1f pts/min, %+.2f energy/min", info.BaseScorePerMinute, -info.EnergyCostPerMinute),
					ui.Muted.Render(fmt.Sprintf("— %s (%s)", info.Anchor, info.Example)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("R without a number is inferred: mood ≥4 and ≥30 min → R3; mood ≥3 and ≥15 min → R2; else R1."))
			return nil
		},
	}

	return cmd
}
