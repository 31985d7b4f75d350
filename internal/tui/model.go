package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"questbox/internal/engine"
	"questbox/internal/i18n"
	"questbox/internal/storage"
	"questbox/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	sess *engine.Session

	width  int
	height int

	filter engine.Filter
	sortBy engine.Sort

	selected int
	lastLog  string
}

func newBoardModel(ctx context.Context, svc *engine.Service, sess *engine.Session) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		sess:    sess,
		filter:  engine.FilterAll,
		sortBy:  engine.SortNewest,
		lastLog: "Ready.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) visible() []storage.Quest {
	return engine.SortQuests(engine.FilterQuests(m.sess.Quests, m.filter), m.sortBy)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
			return m, nil
		case "r":
			// Re-read the bundle so changes made by another process show up.
			sess, err := m.svc.Resume(m.ctx)
			if err != nil || sess == nil {
				m.lastLog = "Refresh failed."
				return m, nil
			}
			m.sess = sess
			m.selected = 0
			m.lastLog = "Refreshed."
			return m, nil
		case "f":
			m.filter = nextFilter(m.filter)
			m.selected = 0
			m.lastLog = "Filter: " + string(m.filter)
			return m, nil
		case "s":
			m.sortBy = nextSort(m.sortBy)
			m.lastLog = "Sort: " + string(m.sortBy)
			return m, nil
		case "c", " ", "enter":
			quests := m.visible()
			if m.selected < 0 || m.selected >= len(quests) {
				return m, nil
			}
			// Toggle on the event loop: the session is shared with View, so
			// mutations must not run on a command goroutine.
			res, err := m.svc.ToggleQuest(m.ctx, m.sess, quests[m.selected].ID)
			if err != nil {
				m.lastLog = "Toggle failed: " + err.Error()
				return m, nil
			}
			m = m.describeToggle(res)
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) describeToggle(res *engine.ToggleResult) boardModel {
	if !res.Completed {
		m.lastLog = fmt.Sprintf("Reopened %s (-%d XP)", res.Quest.Title, res.XPLost)
		return m
	}
	parts := []string{fmt.Sprintf("Done %s: +%d XP", res.Quest.Title, res.XPGained)}
	if res.StreakBonus > 0 {
		parts = append(parts, fmt.Sprintf("%d-day streak", m.sess.Stats.Streak))
	}
	if res.LevelUp {
		parts = append(parts, fmt.Sprintf("LEVEL UP → %d", res.NewLevel))
	}
	if res.Notification != "" {
		parts = append(parts, "unlocked "+i18n.T(m.sess.Lang, "ach_"+res.Notification))
	}
	m.lastLog = strings.Join(parts, " | ")
	return m
}

func nextFilter(f engine.Filter) engine.Filter {
	switch f {
	case engine.FilterAll:
		return engine.FilterActive
	case engine.FilterActive:
		return engine.FilterCompleted
	default:
		return engine.FilterAll
	}
}

func nextSort(s engine.Sort) engine.Sort {
	switch s {
	case engine.SortNewest:
		return engine.SortXP
	case engine.SortXP:
		return engine.SortCategory
	default:
		return engine.SortNewest
	}
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + ui.Muted.Render(m.lastLog)

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	st := m.sess.Stats
	bar := ui.Bar(st.CurrentXP, st.XPToNext, 30)
	return fmt.Sprintf("%s | %s | Level %d | XP %d/%d %s",
		i18n.T(m.sess.Lang, "appTitle"), m.sess.User.Username, st.Level, st.CurrentXP, st.XPToNext, bar)
}

func (m boardModel) renderSidebar() string {
	st := m.sess.Stats
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Streak: %d", st.Streak))
	lines = append(lines, fmt.Sprintf("- Completed: %d", st.TotalCompleted))
	lines = append(lines, fmt.Sprintf("- Achievements: %d/%d", len(st.Unlocked), len(engine.Catalog())))
	lines = append(lines, "")
	lines = append(lines, "View")
	lines = append(lines, "- Filter: "+string(m.filter))
	lines = append(lines, "- Sort: "+string(m.sortBy))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- f: cycle filter")
	lines = append(lines, "- s: cycle sort")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	var out []string
	out = append(out, "Quest Log")

	quests := m.visible()
	if len(quests) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	sel := m.selected
	if sel >= len(quests) {
		sel = len(quests) - 1
	}
	for i, q := range quests {
		cursor := "  "
		if i == sel {
			cursor = "> "
		}
		check := "[ ]"
		if q.Completed {
			check = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (%s, %d xp)",
			cursor, check, ui.CategoryIcon(q.Category), q.Title, q.Category, q.XPValue))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
