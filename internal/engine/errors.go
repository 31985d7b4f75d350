package engine

import "fmt"

// QuestNotFoundError is returned when a quest id (or id prefix) does not
// resolve inside the session's collection.
type QuestNotFoundError struct {
	ID string
}

func (e QuestNotFoundError) Error() string {
	return fmt.Sprintf("quest %q not found", e.ID)
}

// AmbiguousQuestError is returned when an id prefix matches more than one
// quest.
type AmbiguousQuestError struct {
	Prefix  string
	Matches int
}

func (e AmbiguousQuestError) Error() string {
	return fmt.Sprintf("quest id prefix %q matches %d quests", e.Prefix, e.Matches)
}

// NoSessionError is returned by operations that need a logged-in user.
type NoSessionError struct{}

func (NoSessionError) Error() string {
	return "no active session; run 'qb login <username>' first"
}
