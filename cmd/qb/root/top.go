package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/ui"
)

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the local leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.Leaderboard(ctx)
			if err != nil {
				return err
			}

			// Highlight the current user if somebody is logged in.
			currentID := ""
			if sess, err := svc.Resume(ctx); err == nil && sess != nil {
				currentID = sess.User.ID
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Leaderboard"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no adventurers yet)"))
				return nil
			}
			for i, e := range entries {
				rank := fmt.Sprintf("%2d.", i+1)
				switch i {
				case 0:
					rank = "🥇 "
				case 1:
					rank = "🥈 "
				case 2:
					rank = "🥉 "
				}
				name := e.Username
				if e.UserID == currentID {
					name = ui.SelectedRow.Render(name + " (you)")
				}
				fmt.Fprintf(out, "%s %s %s\n", rank, name,
					ui.Muted.Render(fmt.Sprintf("level %d, %d xp", e.Level, e.TotalXP)))
			}
			return nil
		},
	}

	return cmd
}
