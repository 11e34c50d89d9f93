package store

import (
	"context"

	"github.com/Dosseh91/listinghub/internal/models"
)

// CreateMessage assigns a new id and creation timestamp and appends the
// message in unread state.
func (s *Store) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	if err := ctx.Err(); err != nil {
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = newID()
	msg.CreatedAt = s.now()
	msg.Read = false
	s.messages = append(s.messages, msg)
	return msg, nil
}

// MessageByID returns the message with the given id.
func (s *Store) MessageByID(id string) (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.messages {
		if m.ID == id {
			return m, true
		}
	}
	return models.Message{}, false
}

// MessagesByAgency returns all messages addressed to the given agency.
func (s *Store) MessagesByAgency(agencyID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Message{}
	for _, m := range s.messages {
		if m.AgencyID == agencyID {
			out = append(out, m)
		}
	}
	return out
}

// MessagesByListing returns all messages left on the given listing.
func (s *Store) MessagesByListing(listingID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Message{}
	for _, m := range s.messages {
		if m.ListingID == listingID {
			out = append(out, m)
		}
	}
	return out
}

// MarkMessageRead flags the message as read. Unknown ids are a silent no-op.
func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			return nil
		}
	}
	return nil
}
