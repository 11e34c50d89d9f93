package models

import "time"

// Message represents a contact request left by an anonymous visitor on a
// listing. Read state is toggled by the owning agency.
type Message struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	AgencyID  string    `json:"agency_id"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
