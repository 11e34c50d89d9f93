package models

// Agency represents a professional entity permitted to create listings.
// Each agency is owned by exactly one user (1:1 via UserID).
type Agency struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Logo        *string `json:"logo,omitempty"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Website     *string `json:"website,omitempty"`
	Verified    bool    `json:"verified"`
}
