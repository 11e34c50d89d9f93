package store

import (
	"context"

	"github.com/Dosseh91/listinghub/internal/models"
)

// UserByEmail returns the user with the given email. Absence is signalled by
// the bool.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser assigns a new id and creation timestamp and appends the user.
func (s *Store) AddUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = newID()
	user.CreatedAt = s.now()
	s.users = append(s.users, user)
	return user, nil
}
