package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(db)
}

// Both backends must honor the same contract.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLiteStore(t),
		"memory": NewMemoryStore(),
	}
}

func testUser(id, name string) User {
	return User{
		ID:        id,
		Username:  name,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testBundle() Bundle {
	return Bundle{
		Quests: []Quest{
			{
				ID:          "q2",
				Title:       "Check the Map",
				Description: "north wing first",
				Completed:   false,
				XPValue:     10,
				Category:    "side-quest",
				CreatedAt:   time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:        "q1",
				Title:     "Slay the dust bunnies",
				Completed: true,
				XPValue:   15,
				Category:  "daily",
				CreatedAt: time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC),
			},
		},
		Stats: Stats{
			Level:          2,
			CurrentXP:      40,
			XPToNext:       150,
			Streak:         2,
			LastActiveDate: "2026-03-02",
			TotalCompleted: 4,
			Unlocked:       []string{"first_step"},
		},
		Lang: "zh",
	}
}

func TestFindUserByNameCaseInsensitive(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.CreateUser(ctx, testUser("u1", "Alice")))

			u, err := s.FindUserByName(ctx, "ALICE")
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, "u1", u.ID)
			assert.Equal(t, "Alice", u.Username, "stored casing is kept")

			missing, err := s.FindUserByName(ctx, "nobody")
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestBundleRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.CreateUser(ctx, testUser("u1", "Alice")))

			got, err := s.LoadBundle(ctx, "u1")
			require.NoError(t, err)
			assert.Nil(t, got, "never-saved user has no bundle")

			want := testBundle()
			require.NoError(t, s.SaveBundle(ctx, "u1", want))
			got, err = s.LoadBundle(ctx, "u1")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, want, *got)

			// Saves overwrite the whole bundle; nothing merges.
			want.Quests = want.Quests[:1]
			want.Stats.CurrentXP = 99
			require.NoError(t, s.SaveBundle(ctx, "u1", want))
			got, err = s.LoadBundle(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestRegistryLifecycle(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.CreateUser(ctx, testUser("u1", "Alice")))
			require.NoError(t, s.CreateUser(ctx, testUser("u2", "Bob")))

			entries, err := s.ListRegistry(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, RegistryEntry{UserID: "u1", Username: "Alice", Level: 1, TotalXP: 0}, entries[0])
			assert.Equal(t, "u2", entries[1].UserID, "registration order is preserved")

			require.NoError(t, s.UpdateRegistry(ctx, "u2", 5, 90))
			entries, err = s.ListRegistry(ctx)
			require.NoError(t, err)
			assert.Equal(t, 5, entries[1].Level)
			assert.Equal(t, 90, entries[1].TotalXP)

			// Unknown ids are a silent no-op.
			require.NoError(t, s.UpdateRegistry(ctx, "ghost", 9, 9))
			entries, err = s.ListRegistry(ctx)
			require.NoError(t, err)
			assert.Len(t, entries, 2)
		})
	}
}

func TestLastUser(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			u, err := s.LastUser(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)

			alice := testUser("u1", "Alice")
			require.NoError(t, s.SetLastUser(ctx, &alice))
			u, err = s.LastUser(ctx)
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, "u1", u.ID)

			require.NoError(t, s.SetLastUser(ctx, nil))
			u, err = s.LastUser(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}

func TestLoadBundleCorrupt(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.CreateUser(ctx, testUser("u1", "Alice")))
		require.NoError(t, s.SaveBundle(ctx, "u1", testBundle()))
		s.CorruptBundle("u1")

		_, err := s.LoadBundle(ctx, "u1")
		assert.ErrorIs(t, err, ErrCorruptBundle)
	})

	t.Run("sqlite", func(t *testing.T) {
		s := newSQLiteStore(t)
		require.NoError(t, s.CreateUser(ctx, testUser("u1", "Alice")))
		require.NoError(t, s.SaveBundle(ctx, "u1", testBundle()))
		_, err := s.db.ExecContext(ctx, `UPDATE bundles SET data = '{broken' WHERE user_id = 'u1'`)
		require.NoError(t, err)

		_, err = s.LoadBundle(ctx, "u1")
		assert.ErrorIs(t, err, ErrCorruptBundle)
	})
}
