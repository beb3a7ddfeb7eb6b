// Package memstore provides an in-memory UserStore used by tests.
package memstore

import (
	"context"
	"sync"

	"github.com/marcuslim/authd/internal/models"
	"github.com/marcuslim/authd/internal/storage"
)

var _ storage.UserStore = (*Store)(nil)

// Store keeps users in a mutex-guarded map keyed by email. It mirrors the
// Postgres store's sentinel semantics, including the insert-time uniqueness
// check that backstops racing signups.
type Store struct {
	mu    sync.Mutex
	users map[string]models.User
}

// New returns an empty store.
func New() *Store {
	return &Store{users: make(map[string]models.User)}
}

// CreateUser inserts a user, failing with storage.ErrAlreadyExists on a
// duplicate email.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	s.users[user.Email] = user
	return user, nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// Delete removes a user; tests use it to simulate a valid token whose user is
// gone.
func (s *Store) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, email)
}

// Len reports the number of stored users.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
