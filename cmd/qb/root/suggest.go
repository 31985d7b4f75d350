package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questbox/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [input]",
		Short: "Ask the suggestion source for side-quests",
		Long: `Generate a few short side-quests and add them to your log.

The bundled source returns a fixed localized set after a short delay; a real
generator can be plugged in behind the same contract. If generation fails,
nothing is added.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, sess, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			input := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconMagic+" consulting the oracle…"))
			created, err := svc.SuggestQuests(ctx, sess, input)
			if err != nil {
				return err
			}

			for _, q := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.Good.Render(ui.IconPlus),
					ui.CategoryIcon(q.Category),
					q.Title,
					ui.Muted.Render(fmt.Sprintf("(%d XP)", q.XPValue)))
			}
			return nil
		},
	}

	return cmd
}
