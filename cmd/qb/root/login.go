package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in (registers the name on first sight)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("username is required")
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

			sess, isNew, err := svc.Login(ctx, args[0])
			if err != nil {
				return err
			}

			if isNew {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome, %s! Your adventure begins.\n",
					ui.Good.Render(ui.IconSparkle), ui.Key.Render(sess.User.Username))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome back, %s.\n",
					ui.Good.Render(ui.IconDone), ui.Key.Render(sess.User.Username))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", sess.Stats.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d / %d", sess.Stats.CurrentXP, sess.Stats.XPToNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Quests", len(sess.Quests)))
			return nil
		},
	}

	return cmd
}

func newLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Logout(ctx, sess); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Goodbye, %s. Progress saved.\n",
				ui.Warn.Render(ui.IconWave), ui.Key.Render(sess.User.Username))
			return nil
		},
	}

	return cmd
}
