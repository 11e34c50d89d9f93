// Package listing implements the listing lifecycle: agency submissions enter
// the collection as pending, admins move them between states without
// restriction, and agencies manage their own records.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/store"
	"github.com/shopspring/decimal"
)

// Service errors
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrListingNotOwned  = errors.New("listing not owned by agency")
	ErrAgencyNotFound   = errors.New("agency not found")
	ErrInvalidStatus    = errors.New("invalid listing status")
	ErrCategoryNotFound = errors.New("category not found")
)

// ValidationError carries per-field messages for a rejected draft. Callers
// surface the map field by field and block submission until it is empty.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Service handles listing operations on top of the store.
type Service struct {
	store *store.Store
}

// NewService creates a new listing service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Draft represents a listing submission from an agency.
type Draft struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	CategoryID  string          `json:"category_id"`
	Location    string          `json:"location"`
}

// validate checks field requiredness and referential integrity, collecting
// every failure so the caller can surface them together.
func (s *Service) validate(d *Draft) error {
	fields := map[string]string{}
	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "description is required"
	}
	if !d.Price.IsPositive() {
		fields["price"] = "price must be greater than zero"
	}
	if d.CategoryID == "" {
		fields["category_id"] = "category is required"
	} else if _, ok := s.store.CategoryByID(d.CategoryID); !ok {
		fields["category_id"] = "unknown category"
	}
	if strings.TrimSpace(d.Location) == "" {
		fields["location"] = "location is required"
	}
	if len(d.Images) == 0 {
		fields["images"] = "at least one image is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create validates the draft and stores it as a pending listing owned by the
// agency of the given user.
func (s *Service) Create(ctx context.Context, userID string, draft *Draft) (models.Listing, error) {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return models.Listing{}, ErrAgencyNotFound
	}
	if err := s.validate(draft); err != nil {
		return models.Listing{}, err
	}

	created, err := s.store.CreateListing(ctx, models.Listing{
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Images:      draft.Images,
		Status:      models.StatusPending,
		AgencyID:    agency.ID,
		CategoryID:  draft.CategoryID,
		Location:    draft.Location,
	})
	if err != nil {
		return models.Listing{}, fmt.Errorf("failed to create listing: %w", err)
	}
	return created, nil
}

// Update replaces the editable fields of a listing owned by the given user's
// agency. Ownership and draft validity are both enforced; status and
// timestamps stay under the store's control.
func (s *Service) Update(ctx context.Context, userID, listingID string, draft *Draft) (models.Listing, error) {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return models.Listing{}, ErrAgencyNotFound
	}
	current, ok := s.store.ListingByID(listingID)
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}
	if current.AgencyID != agency.ID {
		return models.Listing{}, ErrListingNotOwned
	}
	if err := s.validate(draft); err != nil {
		return models.Listing{}, err
	}

	current.Title = draft.Title
	current.Description = draft.Description
	current.Price = draft.Price
	current.Images = draft.Images
	current.CategoryID = draft.CategoryID
	current.Location = draft.Location

	if err := s.store.UpdateListing(ctx, current); err != nil {
		return models.Listing{}, fmt.Errorf("failed to update listing: %w", err)
	}
	updated, _ := s.store.ListingByID(listingID)
	return updated, nil
}

// Delete removes a listing owned by the given user's agency.
func (s *Service) Delete(ctx context.Context, userID, listingID string) error {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return ErrAgencyNotFound
	}
	current, ok := s.store.ListingByID(listingID)
	if !ok {
		return ErrListingNotFound
	}
	if current.AgencyID != agency.ID {
		return ErrListingNotOwned
	}
	if err := s.store.DeleteListing(ctx, listingID); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// SetStatus moves a listing to the given status. Every transition is allowed,
// including resetting an approved or rejected listing back to pending. The
// reason is persisted only for rejections.
func (s *Service) SetStatus(ctx context.Context, listingID string, status models.ListingStatus, reason *string) (models.Listing, error) {
	if !status.Valid() {
		return models.Listing{}, ErrInvalidStatus
	}
	if _, ok := s.store.ListingByID(listingID); !ok {
		return models.Listing{}, ErrListingNotFound
	}
	if err := s.store.UpdateListingStatus(ctx, listingID, status, reason); err != nil {
		return models.Listing{}, fmt.Errorf("failed to update status: %w", err)
	}
	updated, _ := s.store.ListingByID(listingID)
	return updated, nil
}

// ForAgencyUser returns the listings owned by the given user's agency.
func (s *Service) ForAgencyUser(userID string) ([]models.Listing, error) {
	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		return nil, ErrAgencyNotFound
	}
	return s.store.ListingsByAgency(agency.ID), nil
}
