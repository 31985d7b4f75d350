package storage

import "time"

// User is a registered identity. The ID is generated once at registration
// and never changes; the username keeps the casing it was first typed with.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegistryEntry is the denormalized leaderboard projection kept for every
// known user. TotalXP holds the current-level XP from the last save, not a
// lifetime sum; ranking sorts by level first so the tiebreaker stays small.
type RegistryEntry struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	TotalXP  int    `json:"totalXp"`
}

// Stats is the per-user progression state. LastActiveDate is a calendar day
// ("YYYY-MM-DD") compared only for equality by the streak rules.
type Stats struct {
	Level          int      `json:"level"`
	CurrentXP      int      `json:"currentXp"`
	XPToNext       int      `json:"xpToNextLevel"`
	Streak         int      `json:"streak"`
	LastActiveDate string   `json:"lastActiveDate"`
	TotalCompleted int      `json:"totalQuestsCompleted"`
	Unlocked       []string `json:"unlockedAchievements"`
}

// Quest is a user-created task. XPValue is frozen at creation time from the
// category and is not recomputed when the category is edited later.
type Quest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	XPValue     int       `json:"xpValue"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Bundle is the complete persisted payload for one user. Saves always
// overwrite the whole bundle; there is no merging or versioning.
type Bundle struct {
	Quests []Quest `json:"quests"`
	Stats  Stats   `json:"stats"`
	Lang   string  `json:"lang"`
}
