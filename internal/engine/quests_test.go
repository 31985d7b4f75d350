package engine

import (
	"testing"
	"time"

	"questbox/internal/storage"
)

func TestNewQuestFreezesReward(t *testing.T) {
	now := day(2026, 3, 1)
	cases := []struct {
		category Category
		wantXP   int
	}{
		{CategoryDaily, 15},
		{CategorySide, 10},
		{CategoryEpic, 50},
	}
	for _, tc := range cases {
		q, err := NewQuest("Slay the dust bunnies", tc.category, "", now)
		if err != nil {
			t.Fatalf("NewQuest(%s): %v", tc.category, err)
		}
		if q.XPValue != tc.wantXP {
			t.Fatalf("%s xp=%d, want %d", tc.category, q.XPValue, tc.wantXP)
		}
		if q.ID == "" || q.Completed {
			t.Fatalf("quest %+v, want fresh id and not completed", q)
		}
	}
}

func TestNewQuestValidation(t *testing.T) {
	if _, err := NewQuest("   ", CategoryDaily, "", day(2026, 3, 1)); err == nil {
		t.Fatalf("expected error for blank title")
	}

	q, err := NewQuest("x", Category("bogus"), "", day(2026, 3, 1))
	if err != nil {
		t.Fatalf("NewQuest: %v", err)
	}
	if q.Category != string(CategoryDaily) || q.XPValue != 15 {
		t.Fatalf("got %+v, want fallback to the default category", q)
	}
}

func testQuests() []storage.Quest {
	return []storage.Quest{
		{ID: "c", Title: "third", Category: "epic", XPValue: 50, CreatedAt: day(2026, 3, 3)},
		{ID: "b", Title: "second", Category: "daily", XPValue: 15, Completed: true, CreatedAt: day(2026, 3, 2)},
		{ID: "a", Title: "first", Category: "side-quest", XPValue: 10, CreatedAt: day(2026, 3, 1)},
	}
}

func TestFilterQuests(t *testing.T) {
	quests := testQuests()

	if got := FilterQuests(quests, FilterAll); len(got) != 3 {
		t.Fatalf("all: %d quests, want 3", len(got))
	}
	active := FilterQuests(quests, FilterActive)
	if len(active) != 2 || active[0].ID != "c" || active[1].ID != "a" {
		t.Fatalf("active: %+v", active)
	}
	completed := FilterQuests(quests, FilterCompleted)
	if len(completed) != 1 || completed[0].ID != "b" {
		t.Fatalf("completed: %+v", completed)
	}
}

func TestSortQuests(t *testing.T) {
	quests := testQuests()

	byXP := SortQuests(quests, SortXP)
	if byXP[0].ID != "c" || byXP[1].ID != "b" || byXP[2].ID != "a" {
		t.Fatalf("xp order: %v %v %v", byXP[0].ID, byXP[1].ID, byXP[2].ID)
	}

	byCat := SortQuests(quests, SortCategory)
	if byCat[0].Category != "daily" || byCat[1].Category != "epic" || byCat[2].Category != "side-quest" {
		t.Fatalf("category order: %+v", byCat)
	}

	// Input order is oldest-last; newest sort must not mutate the input.
	byNew := SortQuests(quests, SortNewest)
	if byNew[0].ID != "c" || byNew[2].ID != "a" {
		t.Fatalf("newest order: %+v", byNew)
	}
	if quests[0].ID != "c" || quests[2].ID != "a" {
		t.Fatalf("input slice mutated: %+v", quests)
	}
}

func TestSortNewestStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	quests := []storage.Quest{
		{ID: "x", CreatedAt: ts},
		{ID: "y", CreatedAt: ts},
	}
	got := SortQuests(quests, SortNewest)
	if got[0].ID != "x" || got[1].ID != "y" {
		t.Fatalf("equal timestamps must keep collection order, got %v %v", got[0].ID, got[1].ID)
	}
}
