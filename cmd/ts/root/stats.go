package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streak, efficiency and mood over the whole log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			stats, err := svc.Stats(ctx, now)
			if err != nil {
				return err
			}
			snap, err := svc.Energy(ctx, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "TimeScore Stats"))
			fmt.Fprintln(out, ui.LabelValue("Total points", fmt.Sprintf("%.1f", snap.TotalPoints)))
			fmt.Fprintln(out, ui.LabelValue("Energy", fmt.Sprintf("%s (%s)", ui.EnergyText(snap.CurrentEnergy), snap.Status)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconStreak, stats.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Efficiency", fmt.Sprintf("%.0f%%", stats.Efficiency)))
			fmt.Fprintln(out, ui.LabelValue("Mood", ui.MoodStars(stats.AverageMood)))
			fmt.Fprintln(out, ui.LabelValue("Behaviors", stats.TotalBehaviors))
			return nil
		},
	}

	return cmd
}
