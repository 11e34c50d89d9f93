package store

import (
	"sync"
	"time"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/google/uuid"
)

// Store holds the in-memory tables for the marketplace. All access goes
// through its methods; the mutex covers every table because handlers run on
// concurrent goroutines even though the modeled domain is single-session.
type Store struct {
	mu sync.RWMutex

	// now is the clock used for created/updated timestamps. Overridable so
	// tests can control timestamp ordering.
	now func() time.Time

	users      []models.User
	agencies   []models.Agency
	categories []models.Category
	listings   []models.Listing
	messages   []models.Message
}

// New creates an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// SetClock overrides the store's clock. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// newID generates a unique record id.
func newID() string {
	return uuid.NewString()
}
