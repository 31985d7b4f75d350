package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/engine"
	"questbox/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			q, err := svc.AddQuest(ctx, sess, args[0], engine.ParseCategory(category), description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				ui.CategoryIcon(q.Category),
				q.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d XP, id %s)", q.Category, q.XPValue, shortID(q.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "daily", "Category (daily|side-quest|epic)")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "Optional description")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
