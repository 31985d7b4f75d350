package storage

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store. It backs tests and works as an
// ephemeral backend. Bundles are kept JSON-encoded so load/save round-trips
// behave exactly like the SQLite store, corrupt payloads included.
type MemoryStore struct {
	mu       sync.RWMutex
	users    []User // registration order
	registry map[string]*RegistryEntry
	bundles  map[string][]byte
	lastUser *User
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		registry: map[string]*RegistryEntry{},
		bundles:  map[string][]byte{},
	}
}

func (s *MemoryStore) FindUserByName(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Username, username) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	s.registry[u.ID] = &RegistryEntry{
		UserID:   u.ID,
		Username: u.Username,
		Level:    1,
		TotalXP:  0,
	}
	return nil
}

func (s *MemoryStore) ListRegistry(_ context.Context) ([]RegistryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RegistryEntry, 0, len(s.users))
	for i := range s.users {
		if e, ok := s.registry[s.users[i].ID]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateRegistry(_ context.Context, userID string, level, totalXP int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.registry[userID]; ok {
		e.Level = level
		e.TotalXP = totalXP
	}
	return nil
}

func (s *MemoryStore) LoadBundle(_ context.Context, userID string) (*Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.bundles[userID]
	if !ok {
		return nil, nil
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, ErrCorruptBundle
	}
	return &b, nil
}

func (s *MemoryStore) SaveBundle(_ context.Context, userID string, b Bundle) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[userID] = data
	return nil
}

// CorruptBundle overwrites a user's stored payload with garbage. Test hook.
func (s *MemoryStore) CorruptBundle(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[userID] = []byte("{not json")
}

func (s *MemoryStore) LastUser(_ context.Context) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastUser == nil {
		return nil, nil
	}
	u := *s.lastUser
	return &u, nil
}

func (s *MemoryStore) SetLastUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.lastUser = nil
		return nil
	}
	cp := *u
	s.lastUser = &cp
	return nil
}
