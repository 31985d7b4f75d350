package engine

import (
	"testing"
	"time"

	"questbox/internal/storage"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNewStats(t *testing.T) {
	st := NewStats()
	if st.Level != 1 || st.CurrentXP != 0 || st.XPToNext != 100 {
		t.Fatalf("NewStats()=%+v, want level 1, 0/100", st)
	}
	if st.Streak != 0 || st.LastActiveDate != "" || st.TotalCompleted != 0 {
		t.Fatalf("NewStats()=%+v, want zeroed activity fields", st)
	}
}

func TestGainXPLevelsAtMostOnce(t *testing.T) {
	st := storage.Stats{Level: 1, CurrentXP: 90, XPToNext: 100}
	leveled := GainXP(&st, 500)
	if !leveled {
		t.Fatalf("expected level-up")
	}
	if st.Level != 2 || st.CurrentXP != 490 || st.XPToNext != 150 {
		t.Fatalf("got %+v, want level 2, xp 490, next 150", st)
	}

	// Overflow XP beyond the new threshold stays until the next gain.
	leveled = GainXP(&st, 0)
	if !leveled {
		t.Fatalf("expected second level-up on next gain")
	}
	if st.Level != 3 || st.CurrentXP != 340 || st.XPToNext != 225 {
		t.Fatalf("got %+v, want level 3, xp 340, next 225", st)
	}
}

func TestGainXPBelowThreshold(t *testing.T) {
	st := storage.Stats{Level: 1, CurrentXP: 0, XPToNext: 100}
	if GainXP(&st, 99) {
		t.Fatalf("did not expect level-up at 99/100")
	}
	if !GainXP(&st, 1) {
		t.Fatalf("expected level-up at exactly 100/100")
	}
	if st.Level != 2 || st.CurrentXP != 0 || st.XPToNext != 150 {
		t.Fatalf("got %+v, want level 2, xp 0, next 150", st)
	}
}

func TestLoseXPFloorsAtZero(t *testing.T) {
	st := storage.Stats{Level: 3, CurrentXP: 10, XPToNext: 225}
	LoseXP(&st, 50)
	if st.CurrentXP != 0 {
		t.Fatalf("currentXp=%d, want 0", st.CurrentXP)
	}
	if st.Level != 3 {
		t.Fatalf("level=%d, want 3 (no de-leveling)", st.Level)
	}
}

func TestRecordCompletionFirstDay(t *testing.T) {
	st := NewStats()
	bonus := RecordCompletion(&st, day(2026, 3, 1))
	if bonus != 0 {
		t.Fatalf("bonus=%d, want 0 on a fresh streak", bonus)
	}
	if st.Streak != 1 || st.LastActiveDate != "2026-03-01" || st.TotalCompleted != 1 {
		t.Fatalf("got %+v, want streak 1 on 2026-03-01", st)
	}
}

func TestRecordCompletionSameDay(t *testing.T) {
	st := NewStats()
	_ = RecordCompletion(&st, day(2026, 3, 1))
	bonus := RecordCompletion(&st, day(2026, 3, 1))
	if bonus != 0 {
		t.Fatalf("bonus=%d, want 0 for a second same-day completion", bonus)
	}
	if st.Streak != 1 {
		t.Fatalf("streak=%d, want 1 (unchanged)", st.Streak)
	}
	if st.TotalCompleted != 2 {
		t.Fatalf("totalCompleted=%d, want 2", st.TotalCompleted)
	}
}

func TestRecordCompletionConsecutiveDays(t *testing.T) {
	st := NewStats()
	_ = RecordCompletion(&st, day(2026, 3, 1))

	bonus := RecordCompletion(&st, day(2026, 3, 2))
	if st.Streak != 2 {
		t.Fatalf("streak=%d, want 2", st.Streak)
	}
	if bonus != 20 {
		t.Fatalf("bonus=%d, want 10*2", bonus)
	}

	bonus = RecordCompletion(&st, day(2026, 3, 3))
	if st.Streak != 3 || bonus != 30 {
		t.Fatalf("streak=%d bonus=%d, want 3 and 30", st.Streak, bonus)
	}
}

func TestRecordCompletionGapResets(t *testing.T) {
	st := NewStats()
	_ = RecordCompletion(&st, day(2026, 3, 1))
	_ = RecordCompletion(&st, day(2026, 3, 2))

	bonus := RecordCompletion(&st, day(2026, 3, 5))
	if st.Streak != 1 {
		t.Fatalf("streak=%d, want reset to 1 after a gap", st.Streak)
	}
	if bonus != 0 {
		t.Fatalf("bonus=%d, want 0 on reset", bonus)
	}
	if st.LastActiveDate != "2026-03-05" {
		t.Fatalf("lastActiveDate=%q, want 2026-03-05", st.LastActiveDate)
	}
}

func TestRecordCompletionMonthBoundary(t *testing.T) {
	st := NewStats()
	_ = RecordCompletion(&st, day(2026, 2, 28))
	_ = RecordCompletion(&st, day(2026, 3, 1))
	if st.Streak != 2 {
		t.Fatalf("streak=%d, want 2 across the month boundary", st.Streak)
	}
}
