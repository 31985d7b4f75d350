package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/i18n"
	"questbox/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a quest (complete, or undo a completion)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.ResolveQuestID(sess, args[0])
			if err != nil {
				return err
			}
			res, err := svc.ToggleQuest(ctx, sess, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Completed {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"), res.Quest.Title,
					ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPGained)))
				if res.StreakBonus > 0 {
					fmt.Fprintf(out, "%s %s\n",
						ui.Warn.Render(ui.IconFlame),
						fmt.Sprintf("%d-day streak! Bonus +%d XP", sess.Stats.Streak, res.StreakBonus))
				}
				if res.LevelUp {
					fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp,
						ui.Gold.Render(fmt.Sprintf("You reached level %d!", res.NewLevel)))
				}
				if res.Notification != "" {
					fmt.Fprintf(out, "%s %s: %s\n",
						ui.Gold.Render(ui.IconMedal+" Achievement unlocked"),
						i18n.T(sess.Lang, "ach_"+res.Notification),
						ui.Muted.Render(i18n.T(sess.Lang, "desc_"+res.Notification)))
					for _, id := range res.Unlocked[1:] {
						fmt.Fprintf(out, "%s %s\n",
							ui.Muted.Render("  also unlocked:"), i18n.T(sess.Lang, "ach_"+id))
					}
				}
			} else {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Warn.Render(ui.IconUndo+" Reopened"), res.Quest.Title,
					ui.Muted.Render(fmt.Sprintf("(-%d XP)", res.XPLost)))
			}
			return nil
		},
	}

	return cmd
}
