package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded behavior (reverses its points and energy)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.DeleteBehavior(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s #%d %s\n",
				ui.Warn.Render(ui.IconUndo+" Deleted"), res.BehaviorID,
				ui.Muted.Render(fmt.Sprintf("(%+.1f points, %+.1f energy reversed)", -res.PointsReversed, -res.EnergyReversed)))
			fmt.Fprintln(out, ui.LabelValue("Total points", fmt.Sprintf("%.1f", res.TotalPoints)))
			fmt.Fprintln(out, ui.LabelValue("Energy", ui.EnergyText(res.CurrentEnergy)))
			return nil
		},
	}

	return cmd
}
