package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"questbox/internal/engine"
	"questbox/internal/storage"
)

func newTestBoard(t *testing.T) (boardModel, *engine.Session) {
	t.Helper()
	ctx := context.Background()
	svc := engine.NewService(storage.NewMemoryStore())

	sess, _, err := svc.Login(ctx, "bo")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.AddQuest(ctx, sess, "sweep the keep", engine.CategoryDaily, ""); err != nil {
		t.Fatalf("add quest: %v", err)
	}
	return newBoardModel(ctx, svc, sess), sess
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// The session is read by View on the event loop, so toggles must complete
// inside Update rather than on a command goroutine.
func TestToggleRunsOnEventLoop(t *testing.T) {
	m, sess := newTestBoard(t)

	got, cmd := m.Update(keyMsg("c"))
	if cmd != nil {
		t.Fatalf("toggle returned a command; it must apply synchronously")
	}
	if !sess.Quests[0].Completed {
		t.Fatalf("quest not completed when Update returned")
	}

	bm := got.(boardModel)
	if _, cmd := bm.Update(keyMsg("c")); cmd != nil {
		t.Fatalf("second toggle returned a command")
	}
	if sess.Quests[0].Completed {
		t.Fatalf("second toggle did not reopen the quest")
	}
}

func TestToggleReportsResult(t *testing.T) {
	m, _ := newTestBoard(t)

	got, _ := m.Update(keyMsg("c"))
	bm := got.(boardModel)
	if bm.lastLog == "" || bm.lastLog == "Ready." {
		t.Fatalf("lastLog=%q, want a toggle summary", bm.lastLog)
	}
}

func TestRefreshRereadsSession(t *testing.T) {
	m, sess := newTestBoard(t)
	ctx := context.Background()

	// A change made outside this model, as another process would.
	if _, err := m.svc.AddQuest(ctx, sess, "from elsewhere", engine.CategoryEpic, ""); err != nil {
		t.Fatalf("add quest: %v", err)
	}

	got, cmd := m.Update(keyMsg("r"))
	if cmd != nil {
		t.Fatalf("refresh returned a command")
	}
	bm := got.(boardModel)
	if len(bm.sess.Quests) != 2 {
		t.Fatalf("refreshed session has %d quests, want 2", len(bm.sess.Quests))
	}
}
