// Package contact handles the visitor contact form: anonymous submissions
// addressed to the agency that owns a listing, with a read flag the agency
// toggles from its dashboard.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/store"
)

// Service errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrMessageNotOwned = errors.New("message not addressed to agency")
	ErrInvalidMessage  = errors.New("name, email and message are required")
)

// Service handles contact messages.
type Service struct {
	store *store.Store

	// submitDelay simulates the latency of a remote submission for UX
	// feedback. Zero disables it.
	submitDelay time.Duration
}

// NewService creates a new contact service.
func NewService(st *store.Store, submitDelay time.Duration) *Service {
	return &Service{store: st, submitDelay: submitDelay}
}

// SubmitRequest represents a contact form submission.
type SubmitRequest struct {
	ListingID string  `json:"listing_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message" binding:"required"`
}

// Submit records a visitor message for the agency owning the listing. The
// configured delay is applied before the write and respects cancellation.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (models.Message, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return models.Message{}, ErrInvalidMessage
	}

	target, ok := s.store.ListingByID(req.ListingID)
	if !ok {
		return models.Message{}, ErrListingNotFound
	}

	if s.submitDelay > 0 {
		timer := time.NewTimer(s.submitDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.Message{}, ctx.Err()
		case <-timer.C:
		}
	}

	msg, err := s.store.CreateMessage(ctx, models.Message{
		ListingID: target.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		AgencyID:  target.AgencyID,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// ForAgencyUser returns the messages addressed to the given user's agency and
// the count still unread.
func (s *Service) ForAgencyUser(userID string) ([]models.Message, int, error) {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return nil, 0, ErrMessageNotOwned
	}
	msgs := s.store.MessagesByAgency(agency.ID)
	unread := 0
	for _, m := range msgs {
		if !m.Read {
			unread++
		}
	}
	return msgs, unread, nil
}

// MarkRead flags a message as read on behalf of the owning agency's user.
func (s *Service) MarkRead(ctx context.Context, userID, messageID string) error {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return ErrMessageNotOwned
	}
	msg, ok := s.store.MessageByID(messageID)
	if !ok {
		return ErrMessageNotFound
	}
	if msg.AgencyID != agency.ID {
		return ErrMessageNotOwned
	}
	if err := s.store.MarkMessageRead(ctx, messageID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}
