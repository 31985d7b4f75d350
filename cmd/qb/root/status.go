package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questbox/internal/engine"
	"questbox/internal/i18n"
	"questbox/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, sess, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := sess.Stats
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("%s — %s", i18n.T(sess.Lang, "appTitle"), sess.User.Username)))
			fmt.Fprintln(out, ui.LabelValue(i18n.T(sess.Lang, "level"), st.Level))
			fmt.Fprintf(out, "%s %s\n",
				ui.Key.Render("XP:"),
				fmt.Sprintf("%d / %d %s", st.CurrentXP, st.XPToNext, ui.Bar(st.CurrentXP, st.XPToNext, 24)))
			streak := fmt.Sprintf("%d", st.Streak)
			if st.Streak > 1 {
				streak = ui.Warn.Render(fmt.Sprintf("%s %d days", ui.IconFlame, st.Streak))
			}
			fmt.Fprintln(out, ui.LabelValue(i18n.T(sess.Lang, "streak"), streak))
			fmt.Fprintln(out, ui.LabelValue(i18n.T(sess.Lang, "completed"), st.TotalCompleted))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconMedal+" "+i18n.T(sess.Lang, "achievements")))
			unlocked := map[string]bool{}
			for _, id := range st.Unlocked {
				unlocked[id] = true
			}
			for _, a := range engine.Catalog() {
				mark := ui.Muted.Render("🔒")
				name := ui.Muted.Render(i18n.T(sess.Lang, a.TitleKey))
				if unlocked[a.ID] {
					mark = a.Icon
					name = ui.Gold.Render(i18n.T(sess.Lang, a.TitleKey))
				}
				fmt.Fprintf(out, "- %s %s %s\n", mark, name, ui.Muted.Render(i18n.T(sess.Lang, a.DescKey)))
			}
			return nil
		},
	}

	return cmd
}
