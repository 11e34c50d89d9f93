package store

import (
	"context"
	"testing"
	"time"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/shopspring/decimal"
)

// tickingClock returns a clock that advances one second per call, so every
// store write gets a strictly later timestamp than the previous one.
func tickingClock() func() time.Time {
	t := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore() *Store {
	s := New()
	s.SetClock(tickingClock())
	return s
}

func draftListing() models.Listing {
	return models.Listing{
		Title:       "Vintage Road Bike",
		Description: "Well maintained steel frame bike from the eighties.",
		Price:       decimal.NewFromInt(450),
		Images:      []string{"https://images.example.com/listings/bike-1.jpg"},
		Status:      models.StatusPending,
		AgencyID:    "1",
		CategoryID:  "2",
		Location:    "Portland, OR",
	}
}

func TestCreateListing(t *testing.T) {
	s := newTestStore()

	first, err := s.CreateListing(context.Background(), draftListing())
	if err != nil {
		t.Fatalf("CreateListing failed: %v", err)
	}
	if first.ID == "" {
		t.Error("Expected a generated id")
	}
	if !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Errorf("Expected identical timestamps at creation, got created=%v updated=%v", first.CreatedAt, first.UpdatedAt)
	}

	second, err := s.CreateListing(context.Background(), draftListing())
	if err != nil {
		t.Fatalf("CreateListing failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("Expected distinct ids for distinct listings")
	}

	stored, ok := s.ListingByID(first.ID)
	if !ok {
		t.Fatal("Created listing not found by id")
	}
	if stored.Title != first.Title {
		t.Errorf("Expected title %q, got %q", first.Title, stored.Title)
	}
}

func TestUpdateListingStatus(t *testing.T) {
	s := newTestStore()
	created, _ := s.CreateListing(context.Background(), draftListing())

	if err := s.UpdateListingStatus(context.Background(), created.ID, models.StatusApproved, nil); err != nil {
		t.Fatalf("UpdateListingStatus failed: %v", err)
	}

	updated, ok := s.ListingByID(created.ID)
	if !ok {
		t.Fatal("Listing vanished after status update")
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("Expected approved, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("Expected updatedAt to advance, got %v (was %v)", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected createdAt to be preserved")
	}

	// The listing must have moved between the status-derived sets.
	if len(s.ListingsByStatus(models.StatusPending)) != 0 {
		t.Error("Expected the pending set to be empty")
	}
	approved := s.ListingsByStatus(models.StatusApproved)
	if len(approved) != 1 || approved[0].ID != created.ID {
		t.Errorf("Expected the approved set to contain the listing, got %v", approved)
	}
}

func TestUpdateListingStatus_RejectionReason(t *testing.T) {
	s := newTestStore()
	created, _ := s.CreateListing(context.Background(), draftListing())

	reason := "Images do not match the description"
	if err := s.UpdateListingStatus(context.Background(), created.ID, models.StatusRejected, &reason); err != nil {
		t.Fatalf("UpdateListingStatus failed: %v", err)
	}
	rejected, _ := s.ListingByID(created.ID)
	if rejected.RejectionReason == nil || *rejected.RejectionReason != reason {
		t.Errorf("Expected rejection reason to be recorded, got %v", rejected.RejectionReason)
	}

	// Re-approving clears the reason.
	if err := s.UpdateListingStatus(context.Background(), created.ID, models.StatusApproved, nil); err != nil {
		t.Fatalf("UpdateListingStatus failed: %v", err)
	}
	approved, _ := s.ListingByID(created.ID)
	if approved.RejectionReason != nil {
		t.Errorf("Expected rejection reason to be cleared, got %v", approved.RejectionReason)
	}
}

func TestUpdateListing(t *testing.T) {
	s := newTestStore()
	created, _ := s.CreateListing(context.Background(), draftListing())

	edited := created
	edited.Title = "Vintage Road Bike (price reduced)"
	edited.Price = decimal.NewFromInt(400)

	if err := s.UpdateListing(context.Background(), edited); err != nil {
		t.Fatalf("UpdateListing failed: %v", err)
	}

	stored, _ := s.ListingByID(created.ID)
	if stored.Title != edited.Title {
		t.Errorf("Expected edited title, got %q", stored.Title)
	}
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected createdAt to be preserved across edits")
	}
	if !stored.UpdatedAt.After(created.UpdatedAt) {
		t.Error("Expected updatedAt to advance on edit")
	}
}

func TestListingOpsUnknownIDAreNoOps(t *testing.T) {
	s := newTestStore()
	created, _ := s.CreateListing(context.Background(), draftListing())

	if err := s.UpdateListingStatus(context.Background(), "no-such-id", models.StatusApproved, nil); err != nil {
		t.Errorf("Expected silent no-op, got %v", err)
	}
	ghost := draftListing()
	ghost.ID = "no-such-id"
	if err := s.UpdateListing(context.Background(), ghost); err != nil {
		t.Errorf("Expected silent no-op, got %v", err)
	}
	if err := s.DeleteListing(context.Background(), "no-such-id"); err != nil {
		t.Errorf("Expected silent no-op, got %v", err)
	}

	stored, ok := s.ListingByID(created.ID)
	if !ok || stored.Status != models.StatusPending {
		t.Error("Expected the existing listing to be untouched")
	}
	if len(s.Listings()) != 1 {
		t.Errorf("Expected one listing, got %d", len(s.Listings()))
	}
}

func TestDeleteListing(t *testing.T) {
	s := newTestStore()
	first, _ := s.CreateListing(context.Background(), draftListing())
	second, _ := s.CreateListing(context.Background(), draftListing())

	if err := s.DeleteListing(context.Background(), first.ID); err != nil {
		t.Fatalf("DeleteListing failed: %v", err)
	}
	if _, ok := s.ListingByID(first.ID); ok {
		t.Error("Expected the deleted listing to be gone")
	}
	if _, ok := s.ListingByID(second.ID); !ok {
		t.Error("Expected the other listing to survive")
	}
}

func TestListingByID_Absent(t *testing.T) {
	s := newTestStore()
	l, ok := s.ListingByID("missing")
	if ok {
		t.Error("Expected absence for unknown id")
	}
	if l.ID != "" {
		t.Errorf("Expected the zero listing, got %v", l)
	}
}

func TestDerivedSetsNeverNil(t *testing.T) {
	s := newTestStore()
	if s.ListingsByStatus(models.StatusApproved) == nil {
		t.Error("ListingsByStatus returned nil")
	}
	if s.ListingsByAgency("1") == nil {
		t.Error("ListingsByAgency returned nil")
	}
	if s.ListingsByCategory("1") == nil {
		t.Error("ListingsByCategory returned nil")
	}
}

func TestCancelledContextRejectsWrites(t *testing.T) {
	s := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.CreateListing(ctx, draftListing()); err == nil {
		t.Error("Expected CreateListing to fail on a cancelled context")
	}
	if len(s.Listings()) != 0 {
		t.Error("Expected no listing to be stored")
	}
}

func TestSeed(t *testing.T) {
	s := New()
	s.Seed()

	if got := len(s.Listings()); got != 6 {
		t.Errorf("Expected 6 seeded listings, got %d", got)
	}
	if got := len(s.ListingsByStatus(models.StatusApproved)); got != 3 {
		t.Errorf("Expected 3 approved seed listings, got %d", got)
	}
	if got := len(s.Categories()); got != 6 {
		t.Errorf("Expected 6 seeded categories, got %d", got)
	}

	admin, ok := s.UserByEmail("admin@example.com")
	if !ok {
		t.Fatal("Expected the seeded admin account")
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("Expected admin role, got %s", admin.Role)
	}

	agency, ok := s.AgencyByUserID("2")
	if !ok || agency.Name != "Luxury Homes Agency" {
		t.Errorf("Expected the seeded agency for user 2, got %v", agency)
	}
}
