package repository

import (
	"context"
	"sync"

	"github.com/okian/voyago/internal/domain/model"
)

// MemoryStore implements UserStore and CatalogStore over seed data held in
// memory. Catalogs are immutable after construction; user preferences are
// the only mutable state and are guarded by a RWMutex so concurrent
// recommendation reads never observe a half-applied update.
type MemoryStore struct {
	mu    sync.RWMutex
	users []model.User
	index map[string]int // user id -> position in users

	catalogs map[model.Category][]model.TravelItem
}

// NewMemoryStore creates a store from seed collections. Slices are copied so
// callers cannot mutate the store's view afterwards.
func NewMemoryStore(users []model.User, catalogs map[model.Category][]model.TravelItem) *MemoryStore {
	s := &MemoryStore{
		users:    make([]model.User, len(users)),
		index:    make(map[string]int, len(users)),
		catalogs: make(map[model.Category][]model.TravelItem, len(catalogs)),
	}
	copy(s.users, users)
	for i, u := range s.users {
		s.index[u.ID] = i
	}
	for cat, items := range catalogs {
		s.catalogs[cat] = append([]model.TravelItem(nil), items...)
	}
	return s
}

// Get returns the user with the given id.
func (s *MemoryStore) Get(_ context.Context, id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return s.users[i], nil
}

// List returns all users in seed order.
func (s *MemoryStore) List(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// UpdatePreferences replaces the preference set of an existing user.
func (s *MemoryStore) UpdatePreferences(_ context.Context, id string, prefs model.Preferences) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	s.users[i].Preferences = prefs
	return s.users[i], nil
}

// Items returns the catalog for a category in seed order.
func (s *MemoryStore) Items(_ context.Context, category model.Category) ([]model.TravelItem, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	// Catalogs never change after construction; no lock needed.
	items := s.catalogs[category]
	out := make([]model.TravelItem, len(items))
	copy(out, items)
	return out, nil
}

// Count returns the total number of items across all catalogs.
func (s *MemoryStore) Count(_ context.Context) int {
	n := 0
	for _, items := range s.catalogs {
		n += len(items)
	}
	return n
}
