package engine

import "questbox/internal/storage"

// Achievement is a static catalog entry. Title and description come from the
// i18n tables via the keys; the unlock predicate reads only the stats.
type Achievement struct {
	ID       string
	Icon     string
	TitleKey string
	DescKey  string
	Unlock   func(st *storage.Stats) bool
}

// Catalog returns the achievement definitions in their canonical order. When
// several unlock in one evaluation, the first of them is the one surfaced as
// a notification.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID: "first_step", Icon: "🥇",
			TitleKey: "ach_first_step", DescKey: "desc_first_step",
			Unlock: func(st *storage.Stats) bool { return st.TotalCompleted >= 1 },
		},
		{
			ID: "streak_master", Icon: "⚡",
			TitleKey: "ach_streak_master", DescKey: "desc_streak_master",
			Unlock: func(st *storage.Stats) bool { return st.Streak >= 3 },
		},
		{
			ID: "high_five", Icon: "👑",
			TitleKey: "ach_high_five", DescKey: "desc_high_five",
			Unlock: func(st *storage.Stats) bool { return st.Level >= 5 },
		},
		{
			ID: "quest_hunter", Icon: "🏅",
			TitleKey: "ach_quest_hunter", DescKey: "desc_quest_hunter",
			Unlock: func(st *storage.Stats) bool { return st.TotalCompleted >= 10 },
		},
	}
}

// EvaluateAchievements appends every newly earned achievement id to the
// unlocked set, in catalog order, and returns the new ids. Already-unlocked
// ids are skipped, so repeated evaluation is a no-op.
func EvaluateAchievements(st *storage.Stats) []string {
	var newly []string
	for _, a := range Catalog() {
		if hasAchievement(st, a.ID) {
			continue
		}
		if a.Unlock(st) {
			st.Unlocked = append(st.Unlocked, a.ID)
			newly = append(newly, a.ID)
		}
	}
	return newly
}

func hasAchievement(st *storage.Stats, id string) bool {
	for _, u := range st.Unlocked {
		if u == id {
			return true
		}
	}
	return false
}
