package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questbox/internal/ui"
)

const Version = "0.1.0"

var dbPathFlag string

var rootCmd = &cobra.Command{
	Use:           "qb",
	Short:         "QuestBox — gamified task tracker",
	Long:          "QuestBox is a local-first CLI/TUI task tracker: complete quests, earn XP, keep streaks, unlock achievements, and climb the local leaderboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Path to the QuestBox database (default from config)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newAddCmd(),
		newDoCmd(),
		newListCmd(),
		newEditCmd(),
		newRmCmd(),
		newStatusCmd(),
		newTopCmd(),
		newLangCmd(),
		newSuggestCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
