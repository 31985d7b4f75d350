package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/engine"
	"questbox/internal/ui"
)

func newListCmd() *cobra.Command {
	var filter string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, sess, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			f := engine.Filter(filter)
			if !f.IsValid() {
				return fmt.Errorf("invalid filter: %s (all|active|completed)", filter)
			}
			s := engine.Sort(sortBy)
			if !s.IsValid() {
				return fmt.Errorf("invalid sort: %s (newest|xp|category)", sortBy)
			}

			quests := engine.SortQuests(engine.FilterQuests(sess.Quests, f), s)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, fmt.Sprintf("Quests — %s", sess.User.Username)))
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing here — add a quest with 'qb add')"))
				return nil
			}
			for _, q := range quests {
				line := fmt.Sprintf("%s %s %s %s %s",
					ui.CheckBox(q.Completed),
					ui.Muted.Render(shortID(q.ID)),
					ui.CategoryIcon(q.Category),
					q.Title,
					ui.Gold.Render(fmt.Sprintf("%d XP", q.XPValue)))
				if q.Description != "" {
					line += " " + ui.Muted.Render("— "+q.Description)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter (all|active|completed)")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "newest", "Sort (newest|xp|category)")

	return cmd
}
