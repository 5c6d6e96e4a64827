package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

func newDefineCmd() *cobra.Command {
	var grade string
	var category string

	cmd := &cobra.Command{
		Use:   "define <name>",
		Short: "Add a behavior to the catalog so it can be recorded by name",
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

			def, err := svc.DefineBehavior(ctx, args[0], grade, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				ui.Good.Render(ui.IconDone+" Defined"), def.Name, ui.GradeText(def.Grade))
			return nil
		},
	}

	cmd.Flags().StringVarP(&grade, "grade", "g", "B", "Grade (S|A|B|C|D|R|R1|R2|R3)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Optional category tag")

	return cmd
}
