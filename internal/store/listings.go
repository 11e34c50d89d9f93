package store

import (
	"context"

	"github.com/Dosseh91/listinghub/internal/models"
)

// CreateListing assigns a new id and identical created/updated timestamps to
// the draft, appends it and returns the stored record. It never fails beyond
// context cancellation; validation is the caller's job.
func (s *Store) CreateListing(ctx context.Context, draft models.Listing) (models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return models.Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	draft.ID = newID()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	s.listings = append(s.listings, draft)
	return draft, nil
}

// UpdateListingStatus replaces the status of the listing with the given id and
// refreshes its updated timestamp. A rejection reason is recorded when the
// target status is rejected and cleared otherwise. Unknown ids are a silent
// no-op.
func (s *Store) UpdateListingStatus(ctx context.Context, id string, status models.ListingStatus, reason *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID != id {
			continue
		}
		s.listings[i].Status = status
		if status == models.StatusRejected {
			s.listings[i].RejectionReason = reason
		} else {
			s.listings[i].RejectionReason = nil
		}
		s.listings[i].UpdatedAt = s.now()
		return nil
	}
	return nil
}

// UpdateListing replaces the record matching the listing's id and refreshes
// its updated timestamp, preserving the original creation time. Unknown ids
// are a silent no-op.
func (s *Store) UpdateListing(ctx context.Context, listing models.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID != listing.ID {
			continue
		}
		listing.CreatedAt = s.listings[i].CreatedAt
		listing.UpdatedAt = s.now()
		s.listings[i] = listing
		return nil
	}
	return nil
}

// DeleteListing removes the listing with the given id.
func (s *Store) DeleteListing(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return nil
		}
	}
	return nil
}

// Listings returns a snapshot of the full collection in insertion order.
// Ordering of the visible set is the filter engine's responsibility.
func (s *Store) Listings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

// ListingByID returns the listing with the given id. Absence is signalled by
// the bool, never by an error.
func (s *Store) ListingByID(id string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.listings {
		if l.ID == id {
			return l, true
		}
	}
	return models.Listing{}, false
}

// ListingsByStatus returns all listings in the given status.
func (s *Store) ListingsByStatus(status models.ListingStatus) []models.Listing {
	return s.filterListings(func(l models.Listing) bool { return l.Status == status })
}

// ListingsByAgency returns all listings owned by the given agency.
func (s *Store) ListingsByAgency(agencyID string) []models.Listing {
	return s.filterListings(func(l models.Listing) bool { return l.AgencyID == agencyID })
}

// ListingsByCategory returns all listings in the given category.
func (s *Store) ListingsByCategory(categoryID string) []models.Listing {
	return s.filterListings(func(l models.Listing) bool { return l.CategoryID == categoryID })
}

func (s *Store) filterListings(keep func(models.Listing) bool) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Listing{}
	for _, l := range s.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
