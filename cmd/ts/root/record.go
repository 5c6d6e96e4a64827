package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timescore/internal/engine"
	"timescore/internal/ui"
)

func newRecordCmd() *cobra.Command {
	var grade string
	var minutes int
	var mood int
	var note string

	cmd := &cobra.Command{
		Use:   "record <name>",
		Short: "Record a behavior and score it",
		Long: `Record a behavior. The grade can be given explicitly (-g), or omitted when
the name is already in the catalog (see "ts define"). The generic grade R is
resolved to R1/R2/R3 from mood and duration.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("behavior name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var notePtr *string
			if note != "" {
				notePtr = &note
			}
			res, err := svc.RecordBehavior(ctx, engine.RecordInput{
				Name:            args[0],
				Grade:           grade,
				DurationMinutes: minutes,
				Mood:            mood,
				Note:            notePtr,
				Now:             time.Now(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Recorded"), res.BehaviorID, args[0],
				ui.GradeText(string(res.Grade)), ui.Muted.Render(fmt.Sprintf("(%d min)", minutes)))
			fmt.Fprintln(out, ui.LabelValue("Score", ui.Score(res.Score)))
			fmt.Fprintln(out, ui.LabelValue("Energy", fmt.Sprintf("%s (%+.1f)", ui.EnergyText(res.CurrentEnergy), res.EnergyChange)))
			if res.RecoveredEnergy > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s recovered %.2f energy while idle", ui.IconRest, res.RecoveredEnergy)))
			}
			if res.DailyReset {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconBolt+" energy reset for the new day"))
			}
			if res.ComboCount >= 3 {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s combo x%d", ui.IconStreak, res.ComboCount)))
			}
			fmt.Fprintln(out, ui.LabelValue("Total points", fmt.Sprintf("%.1f", res.TotalPoints)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&grade, "grade", "g", "", "Grade (S|A|B|C|D|R|R1|R2|R3); optional for cataloged behaviors")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Duration in minutes")
	cmd.Flags().IntVar(&mood, "mood", 3, "Mood rating (1-5)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}
