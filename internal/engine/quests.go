package engine

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"questbox/internal/storage"
)

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// NewQuest builds a quest with a fresh id and the reward frozen from the
// category. Callers prepend it to keep collections newest-first.
func NewQuest(title string, c Category, description string, now time.Time) (storage.Quest, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return storage.Quest{}, err
	}
	if !c.IsValid() {
		c = DefaultCategory
	}
	return storage.Quest{
		ID:          uuid.NewString(),
		Title:       t,
		Description: strings.TrimSpace(description),
		Completed:   false,
		XPValue:     RewardFor(c),
		Category:    string(c),
		CreatedAt:   now,
	}, nil
}

func findQuest(quests []storage.Quest, id string) int {
	for i := range quests {
		if quests[i].ID == id {
			return i
		}
	}
	return -1
}

// FilterQuests returns the quests matching the filter. The input slice is
// never mutated.
func FilterQuests(quests []storage.Quest, f Filter) []storage.Quest {
	out := make([]storage.Quest, 0, len(quests))
	for _, q := range quests {
		switch f {
		case FilterActive:
			if q.Completed {
				continue
			}
		case FilterCompleted:
			if !q.Completed {
				continue
			}
		}
		out = append(out, q)
	}
	return out
}

// SortQuests returns a sorted copy. Ties keep the collection's newest-first
// order.
func SortQuests(quests []storage.Quest, s Sort) []storage.Quest {
	out := make([]storage.Quest, len(quests))
	copy(out, quests)

	switch s {
	case SortXP:
		sort.SliceStable(out, func(i, j int) bool { return out[i].XPValue > out[j].XPValue })
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}
