package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/engine"
	"questbox/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a quest's title, description or category",
		Long: `Edit fields of an existing quest in place.

Changing the category does not change the quest's XP reward: the reward was
fixed from the category at creation time.`,
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

			var upd engine.QuestUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				upd.Description = &description
			}
			if cmd.Flags().Changed("category") {
				c := engine.Category(category)
				upd.Category = &c
			}
			if upd.Title == nil && upd.Description == nil && upd.Category == nil {
				return errors.New("nothing to change (use --title, --desc or --category)")
			}

			q, err := svc.UpdateQuest(ctx, sess, id, upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"),
				ui.CategoryIcon(q.Category),
				q.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %d XP)", q.Category, q.XPValue)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category (daily|side-quest|epic)")

	return cmd
}
