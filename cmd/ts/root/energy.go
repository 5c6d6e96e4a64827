package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timescore/internal/engine"
	"timescore/internal/ui"
)

func newEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Show current energy and pending idle recovery",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Energy(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Energy"))
			fmt.Fprintln(out, ui.LabelValue("Current", fmt.Sprintf("%s / %.0f (%s)", ui.EnergyText(snap.CurrentEnergy), engine.EnergyMax, snap.Status)))
			fmt.Fprintln(out, ui.LabelValue("Bar", ui.ProgressBar(snap.CurrentEnergy/engine.EnergyMax, 20)))
			if snap.PendingRecovery > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s +%.2f idle recovery lands on the next record", ui.IconRest, snap.PendingRecovery)))
			}
			if snap.DailyReset {
				fmt.Fprintln(out, ui.Muted.Render("New day: energy shown after the daily reset."))
			}
			return nil
		},
	}

	return cmd
}
