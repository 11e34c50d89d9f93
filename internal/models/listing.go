package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus represents the moderation state of a listing
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

// Valid reports whether the status is one of the known states.
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Listing represents a sellable item posted by an agency and gated by admin
// approval. Status transitions are unconstrained: an admin may move a listing
// between any two states, including back to pending.
type Listing struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Images          []string        `json:"images"`
	Status          ListingStatus   `json:"status"`
	AgencyID        string          `json:"agency_id"`
	CategoryID      string          `json:"category_id"`
	Location        string          `json:"location"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
