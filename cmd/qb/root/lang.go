package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/engine"
	"questbox/internal/ui"
)

func newLangCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang <en|zh>",
		Short: "Set the session language",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("language code is required (en|zh)")
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

			if err := svc.SetLanguage(ctx, sess, engine.Language(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Language set to %s\n",
				ui.Good.Render(ui.IconDone), ui.Key.Render(args[0]))
			return nil
		},
	}

	return cmd
}
