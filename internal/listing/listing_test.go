package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/store"
	"github.com/shopspring/decimal"
)

func newTestService() (*Service, *store.Store) {
	st := store.New()
	st.Seed()
	return NewService(st), st
}

func validDraft() *Draft {
	return &Draft{
		Title:       "Cozy Studio Apartment",
		Description: "Bright studio close to the city center.",
		Price:       decimal.NewFromInt(185000),
		Images:      []string{"https://images.example.com/listings/studio-1.jpg"},
		CategoryID:  "1",
		Location:    "Austin, TX",
	}
}

func TestCreate(t *testing.T) {
	svc, st := newTestService()

	// Seed user 2 owns agency 1.
	created, err := svc.Create(context.Background(), "2", validDraft())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Errorf("Expected new listings to be pending, got %s", created.Status)
	}
	if created.AgencyID != "1" {
		t.Errorf("Expected the user's agency as owner, got %s", created.AgencyID)
	}
	if _, ok := st.ListingByID(created.ID); !ok {
		t.Error("Expected the listing to be stored")
	}
}

func TestCreate_NoAgency(t *testing.T) {
	svc, _ := newTestService()

	// The seed admin owns no agency.
	_, err := svc.Create(context.Background(), "1", validDraft())
	if !errors.Is(err, ErrAgencyNotFound) {
		t.Fatalf("Expected ErrAgencyNotFound, got %v", err)
	}
}

func TestCreate_ValidationCollectsAllFailures(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "2", &Draft{
		Title:      "   ",
		Price:      decimal.NewFromInt(-5),
		CategoryID: "no-such-category",
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "description", "price", "category_id", "location", "images"} {
		if _, ok := validationErr.Fields[field]; !ok {
			t.Errorf("Expected a message for field %q, got %v", field, validationErr.Fields)
		}
	}
}

func TestCreate_ZeroPriceRejected(t *testing.T) {
	svc, _ := newTestService()

	draft := validDraft()
	draft.Price = decimal.Zero
	_, err := svc.Create(context.Background(), "2", draft)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if _, ok := validationErr.Fields["price"]; !ok {
		t.Errorf("Expected a price message, got %v", validationErr.Fields)
	}
}

func TestUpdate(t *testing.T) {
	svc, st := newTestService()

	draft := validDraft()
	draft.Title = "Cozy Studio Apartment (renovated)"

	// Listing 1 belongs to agency 1, owned by user 2.
	updated, err := svc.Update(context.Background(), "2", "1", draft)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != draft.Title {
		t.Errorf("Expected the edited title, got %q", updated.Title)
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("Expected the status to survive an edit, got %s", updated.Status)
	}

	stored, _ := st.ListingByID("1")
	if stored.Title != draft.Title {
		t.Error("Expected the edit to be persisted")
	}
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestService()

	// Listing 3 belongs to agency 2; user 2 owns agency 1.
	_, err := svc.Update(context.Background(), "2", "3", validDraft())
	if !errors.Is(err, ErrListingNotOwned) {
		t.Fatalf("Expected ErrListingNotOwned, got %v", err)
	}

	_, err = svc.Update(context.Background(), "2", "no-such-listing", validDraft())
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("Expected ErrListingNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, st := newTestService()

	if err := svc.Delete(context.Background(), "2", "1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := st.ListingByID("1"); ok {
		t.Error("Expected the listing to be gone")
	}

	if err := svc.Delete(context.Background(), "2", "3"); !errors.Is(err, ErrListingNotOwned) {
		t.Errorf("Expected ErrListingNotOwned for another agency's listing, got %v", err)
	}
	if err := svc.Delete(context.Background(), "2", "missing"); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("Expected ErrListingNotFound, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestService()

	// Listing 4 is pending in the seed data.
	approved, err := svc.SetStatus(context.Background(), "4", models.StatusApproved, nil)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if approved.Status != models.StatusApproved {
		t.Errorf("Expected approved, got %s", approved.Status)
	}

	reason := "Duplicate of an existing listing"
	rejected, err := svc.SetStatus(context.Background(), "4", models.StatusRejected, &reason)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if rejected.RejectionReason == nil || *rejected.RejectionReason != reason {
		t.Errorf("Expected the rejection reason, got %v", rejected.RejectionReason)
	}

	// Resetting back to pending is a legal transition and clears the reason.
	pending, err := svc.SetStatus(context.Background(), "4", models.StatusPending, nil)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if pending.Status != models.StatusPending || pending.RejectionReason != nil {
		t.Errorf("Expected a clean pending listing, got %+v", pending)
	}
}

func TestSetStatus_Rejections(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.SetStatus(context.Background(), "4", "archived", nil); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.SetStatus(context.Background(), "missing", models.StatusApproved, nil); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("Expected ErrListingNotFound, got %v", err)
	}
}

func TestForAgencyUser(t *testing.T) {
	svc, _ := newTestService()

	listings, err := svc.ForAgencyUser("2")
	if err != nil {
		t.Fatalf("ForAgencyUser failed: %v", err)
	}
	if len(listings) != 2 {
		t.Errorf("Expected the 2 seeded listings of agency 1, got %d", len(listings))
	}
	for _, l := range listings {
		if l.AgencyID != "1" {
			t.Errorf("Expected only agency 1 listings, got %s", l.AgencyID)
		}
	}

	if _, err := svc.ForAgencyUser("1"); !errors.Is(err, ErrAgencyNotFound) {
		t.Errorf("Expected ErrAgencyNotFound for the admin, got %v", err)
	}
}
