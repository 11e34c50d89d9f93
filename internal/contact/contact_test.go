package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosseh91/listinghub/internal/store"
)

func newTestService(delay time.Duration) (*Service, *store.Store) {
	st := store.New()
	st.Seed()
	return NewService(st, delay), st
}

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		ListingID: "1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Is the rooftop terrace shared or private?",
	}
}

func TestSubmit(t *testing.T) {
	svc, st := newTestService(0)

	msg, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	// Listing 1 belongs to agency 1; the message is addressed there.
	if msg.AgencyID != "1" {
		t.Errorf("Expected the owning agency as recipient, got %s", msg.AgencyID)
	}
	if msg.Read {
		t.Error("Expected the message to start unread")
	}

	if _, ok := st.MessageByID(msg.ID); !ok {
		t.Error("Expected the message to be stored")
	}
}

func TestSubmit_UnknownListing(t *testing.T) {
	svc, _ := newTestService(0)

	req := validRequest()
	req.ListingID = "no-such-listing"
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("Expected ErrListingNotFound, got %v", err)
	}
}

func TestSubmit_BlankFieldsRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"blank name", func(r *SubmitRequest) { r.Name = "   " }},
		{"blank email", func(r *SubmitRequest) { r.Email = "" }},
		{"blank message", func(r *SubmitRequest) { r.Message = "\t\n" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(0)
			req := validRequest()
			tt.mutate(req)

			if _, err := svc.Submit(context.Background(), req); !errors.Is(err, ErrInvalidMessage) {
				t.Fatalf("Expected ErrInvalidMessage, got %v", err)
			}
			// Only the two seed messages remain.
			if got := len(st.MessagesByAgency("1")) + len(st.MessagesByAgency("2")); got != 2 {
				t.Errorf("Expected no message to be stored, got %d", got)
			}
		})
	}
}

func TestSubmit_DelayRespectsCancellation(t *testing.T) {
	svc, st := newTestService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Submit(ctx, validRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Expected cancellation to short-circuit the delay")
	}
	if got := len(st.MessagesByListing("1")); got != 1 {
		t.Errorf("Expected only the seed message, got %d", got)
	}
}

func TestForAgencyUser(t *testing.T) {
	svc, _ := newTestService(0)

	// Seed user 2 owns agency 1 with one unread message.
	msgs, unread, err := svc.ForAgencyUser("2")
	if err != nil {
		t.Fatalf("ForAgencyUser failed: %v", err)
	}
	if len(msgs) != 1 || unread != 1 {
		t.Errorf("Expected 1 message with 1 unread, got %d/%d", len(msgs), unread)
	}

	// Seed user 3 owns agency 2 whose message is already read.
	msgs, unread, err = svc.ForAgencyUser("3")
	if err != nil {
		t.Fatalf("ForAgencyUser failed: %v", err)
	}
	if len(msgs) != 1 || unread != 0 {
		t.Errorf("Expected 1 message with 0 unread, got %d/%d", len(msgs), unread)
	}

	if _, _, err := svc.ForAgencyUser("1"); err == nil {
		t.Error("Expected an error for a user without an agency")
	}
}

func TestMarkRead(t *testing.T) {
	svc, st := newTestService(0)

	// Message 1 is addressed to agency 1, owned by user 2.
	if err := svc.MarkRead(context.Background(), "2", "1"); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	msg, _ := st.MessageByID("1")
	if !msg.Read {
		t.Error("Expected the message to be read")
	}

	_, unread, err := svc.ForAgencyUser("2")
	if err != nil {
		t.Fatalf("ForAgencyUser failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("Expected 0 unread after marking, got %d", unread)
	}
}

func TestMarkRead_Ownership(t *testing.T) {
	svc, _ := newTestService(0)

	// User 3 owns agency 2; message 1 belongs to agency 1.
	if err := svc.MarkRead(context.Background(), "3", "1"); !errors.Is(err, ErrMessageNotOwned) {
		t.Errorf("Expected ErrMessageNotOwned, got %v", err)
	}
	if err := svc.MarkRead(context.Background(), "2", "missing"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("Expected ErrMessageNotFound, got %v", err)
	}
}
