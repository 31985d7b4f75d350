package engine

import (
	"time"

	"questbox/internal/storage"
)

const (
	// InitialXPToNext is the level-1 threshold.
	InitialXPToNext = 100

	// ThresholdGrowth is the per-level threshold multiplier (floored).
	ThresholdGrowth = 1.5

	// StreakBonusPerDay is multiplied by the streak length for the daily
	// streak bonus.
	StreakBonusPerDay = 10
)

// NewStats returns a fresh level-1 progression state.
func NewStats() storage.Stats {
	return storage.Stats{
		Level:    1,
		XPToNext: InitialXPToNext,
	}
}

// GainXP adds XP and applies at most one level-up. A single gain never spans
// multiple thresholds: the overflow is carried as CurrentXP and may itself
// exceed the new threshold until a later gain levels it through. Reports
// whether a level-up happened.
func GainXP(st *storage.Stats, amount int) bool {
	st.CurrentXP += amount
	if st.CurrentXP < st.XPToNext {
		return false
	}
	st.CurrentXP -= st.XPToNext
	st.Level++
	st.XPToNext = int(float64(st.XPToNext) * ThresholdGrowth)
	return true
}

// LoseXP removes XP, flooring at zero. Levels are never taken back.
func LoseXP(st *storage.Stats, amount int) {
	st.CurrentXP -= amount
	if st.CurrentXP < 0 {
		st.CurrentXP = 0
	}
}

// DateKey formats a moment as the calendar day the streak rules compare.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RecordCompletion applies the streak bookkeeping for a quest completed at
// the given moment and returns the streak bonus to add to the base reward.
//
// Only the first completion of a calendar day moves the streak: a day
// following yesterday's activity extends it, any other day (including the
// first ever) resets it to 1. The bonus is paid only when the day changed
// and the resulting streak is longer than one day.
func RecordCompletion(st *storage.Stats, today time.Time) (bonus int) {
	day := DateKey(today)
	if st.LastActiveDate != day {
		if st.LastActiveDate == DateKey(today.AddDate(0, 0, -1)) {
			st.Streak++
		} else {
			st.Streak = 1
		}
		if st.Streak > 1 {
			bonus = StreakBonusPerDay * st.Streak
		}
	}
	st.LastActiveDate = day
	st.TotalCompleted++
	return bonus
}
