package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show a day's timeline and contribution breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			date := time.Now()
			if dateStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", dateStr)
				}
				date = parsed
			}

			records, contrib, err := svc.DailyReport(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, date.Format("2006-01-02")))
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No behaviors recorded."))
				return nil
			}

			for _, b := range records {
				fmt.Fprintf(out, "%s  %s %s %s %s\n",
					ui.Muted.Render(b.RecordedAt.Local().Format("15:04")),
					ui.GradeText(b.Grade),
					b.Name,
					ui.Muted.Render(fmt.Sprintf("%d min", b.DurationMinutes)),
					ui.Score(b.Score))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Contribution"))
			for _, item := range contrib.Items {
				fmt.Fprintf(out, "- %s %s %s %s\n",
					ui.GradeText(string(item.Grade)),
					item.Name,
					ui.Score(item.TotalScore),
					ui.Muted.Render(fmt.Sprintf("(%d min, %dx)", item.TotalMinutes, item.Count)))
			}
			fmt.Fprintln(out, ui.LabelValue("Gained", ui.Good.Render(fmt.Sprintf("%+.1f", contrib.PositiveScore))))
			fmt.Fprintln(out, ui.LabelValue("Lost", ui.Bad.Render(fmt.Sprintf("%+.1f", contrib.NegativeScore))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Day to report (YYYY-MM-DD, default today)")

	return cmd
}
