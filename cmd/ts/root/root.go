package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timescore/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ts",
	Short:         "TimeScore — local-first habit and time tracker",
	Long:          "TimeScore is a local-first CLI that grades logged behaviors (S to D, R1-R3),\nturns them into points and energy, and lets you redeem points for wishes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRecordCmd(),
		newDeleteCmd(),
		newDefineCmd(),
		newGradesCmd(),
		newStatsCmd(),
		newTodayCmd(),
		newEnergyCmd(),
		newWishCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
