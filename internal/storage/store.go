package storage

import (
	"context"
	"errors"
)

// ErrCorruptBundle is returned by LoadBundle when a stored bundle fails to
// decode. Callers should treat it as "start from a fresh bundle", not crash.
var ErrCorruptBundle = errors.New("stored bundle is corrupt")

// Store is the persistence boundary: the user registry, per-user bundles and
// the last-session marker. Lookups that find nothing return (nil, nil).
type Store interface {
	// FindUserByName resolves a username case-insensitively.
	FindUserByName(ctx context.Context, username string) (*User, error)
	// CreateUser registers a new identity and seeds its registry entry
	// with level 1 and zero XP.
	CreateUser(ctx context.Context, u User) error
	// ListRegistry returns every known user's entry in registration order.
	ListRegistry(ctx context.Context) ([]RegistryEntry, error)
	// UpdateRegistry refreshes one entry's ranking fields. Unknown ids are
	// a no-op.
	UpdateRegistry(ctx context.Context, userID string, level, totalXP int) error

	// LoadBundle returns the user's last saved bundle, nil if the user has
	// never saved, or ErrCorruptBundle if the payload will not decode.
	LoadBundle(ctx context.Context, userID string) (*Bundle, error)
	// SaveBundle overwrites the user's bundle. Last writer wins.
	SaveBundle(ctx context.Context, userID string, b Bundle) error

	// LastUser returns the identity of the most recent login, nil if
	// logged out.
	LastUser(ctx context.Context) (*User, error)
	// SetLastUser records the active identity; nil clears it.
	SetLastUser(ctx context.Context, u *User) error
}
