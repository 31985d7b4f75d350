package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const lastUserKey = "last_user"

// SQLiteStore persists the registry, bundles and session marker in a single
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) FindUserByName(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, created_at FROM users WHERE username = ? COLLATE NOCASE
	`, username)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user find: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, level, total_xp, created_at)
		VALUES (?, ?, 1, 0, ?)
	`, u.ID, u.Username, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("user insert: %w", err)
	}
	return nil
}

// ListRegistry returns entries in registration order (rowid), which is the
// tie order the leaderboard falls back to.
func (s *SQLiteStore) ListRegistry(ctx context.Context) ([]RegistryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, level, total_xp FROM users ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("registry list: %w", err)
	}
	defer rows.Close()

	var out []RegistryEntry
	for rows.Next() {
		var e RegistryEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Level, &e.TotalXP); err != nil {
			return nil, fmt.Errorf("registry scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("registry rows: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) UpdateRegistry(ctx context.Context, userID string, level, totalXP int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users SET level = ?, total_xp = ? WHERE id = ?
	`, level, totalXP, userID)
	if err != nil {
		return fmt.Errorf("registry update: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadBundle(ctx context.Context, userID string) (*Bundle, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM bundles WHERE user_id = ?`, userID)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("bundle load: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, ErrCorruptBundle
	}
	return &b, nil
}

func (s *SQLiteStore) SaveBundle(ctx context.Context, userID string, b Bundle) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("bundle marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bundles (user_id, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, userID, string(data))
	if err != nil {
		return fmt.Errorf("bundle save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LastUser(ctx context.Context) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, lastUserKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session load: %w", err)
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		// A broken marker is equivalent to being logged out.
		return nil, nil
	}
	return &u, nil
}

func (s *SQLiteStore) SetLastUser(ctx context.Context, u *User) error {
	if u == nil {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, lastUserKey); err != nil {
			return fmt.Errorf("session clear: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, lastUserKey, string(data))
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}
