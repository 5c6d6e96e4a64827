package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

func newWishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Manage wishes redeemable for points",
	}

	cmd.AddCommand(newWishAddCmd(), newWishListCmd(), newWishRedeemCmd())
	return cmd
}

func newWishAddCmd() *cobra.Command {
	var cost float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a wish (cost is at least 100 points)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("wish name is required")
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

			w, err := svc.CreateWish(ctx, args[0], cost, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconWish+" Added"), w.ID, w.Name,
				ui.Muted.Render(fmt.Sprintf("(%.0f points, %.0f%% there)", w.Cost, w.Progress*100)))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&cost, "cost", "c", 100, "Point cost")

	return cmd
}

func newWishListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wishes with progress bars",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pending, err := svc.PendingWishes(ctx)
			if err != nil {
				return err
			}
			snap, err := svc.Energy(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWish, "Wishes"))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%.1f", snap.TotalPoints)))
			if len(pending) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No pending wishes. Add one with: ts wish add <name> -c <cost>"))
			}
			for _, w := range pending {
				status := ui.Good.Render("ready")
				if snap.TotalPoints < w.Cost {
					status = ui.Muted.Render(fmt.Sprintf("needs %.1f more", w.Cost-snap.TotalPoints))
				}
				fmt.Fprintf(out, "%d. %s — %.0f pts [%s] %.0f%% %s\n",
					w.ID, w.Name, w.Cost, ui.ProgressBar(w.Progress, 20), w.Progress*100, status)
			}

			if all {
				redeemed, err := svc.RedeemedWishes(ctx)
				if err != nil {
					return err
				}
				if len(redeemed) > 0 {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Redeemed"))
					for _, w := range redeemed {
						when := ""
						if w.RedeemedAt != nil {
							when = w.RedeemedAt.Local().Format("2006-01-02")
						}
						fmt.Fprintf(out, "%d. %s — %.0f pts %s\n", w.ID, w.Name, w.Cost, ui.Muted.Render(when))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include redeemed wishes")

	return cmd
}

func newWishRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem <id>",
		Short: "Redeem a wish, deducting its cost",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("wish id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("wish id must be an integer")
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
			res, err := svc.RedeemWish(ctx, id, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Gold.Render(ui.IconTrophy+" Redeemed"), res.Wish.Name,
				ui.Muted.Render(fmt.Sprintf("(-%.0f points)", res.Wish.Cost)))
			fmt.Fprintln(out, ui.LabelValue("Remaining points", fmt.Sprintf("%.1f", res.RemainingPoints)))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Redeemed today: %d of 3", res.RedeemedToday)))
			return nil
		},
	}

	return cmd
}
