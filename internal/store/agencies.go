package store

import (
	"context"

	"github.com/Dosseh91/listinghub/internal/models"
)

// Agencies returns a snapshot of all agencies.
func (s *Store) Agencies() []models.Agency {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Agency, len(s.agencies))
	copy(out, s.agencies)
	return out
}

// AgencyByID returns the agency with the given id.
func (s *Store) AgencyByID(id string) (models.Agency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.agencies {
		if a.ID == id {
			return a, true
		}
	}
	return models.Agency{}, false
}

// AgencyByUserID returns the agency owned by the given user.
func (s *Store) AgencyByUserID(userID string) (models.Agency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.agencies {
		if a.UserID == userID {
			return a, true
		}
	}
	return models.Agency{}, false
}

// AddAgency assigns a new id and appends the agency.
func (s *Store) AddAgency(ctx context.Context, agency models.Agency) (models.Agency, error) {
	if err := ctx.Err(); err != nil {
		return models.Agency{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agency.ID = newID()
	s.agencies = append(s.agencies, agency)
	return agency, nil
}

// SetAgencyVerified toggles the admin-managed verified flag. Unknown ids are
// a silent no-op.
func (s *Store) SetAgencyVerified(ctx context.Context, id string, verified bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.agencies {
		if s.agencies[i].ID == id {
			s.agencies[i].Verified = verified
			return nil
		}
	}
	return nil
}
