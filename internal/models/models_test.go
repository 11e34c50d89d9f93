package models

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Vehicles", "vehicles"},
		{"two words", "Real Estate", "real-estate"},
		{"surrounding whitespace", "  Real Estate  ", "real-estate"},
		{"repeated spaces", "Home   Services", "home-services"},
		{"already lowercase", "jobs", "jobs"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleAgency, RoleVisitor} {
		if !role.Valid() {
			t.Errorf("Expected %s to be valid", role)
		}
	}
	for _, role := range []UserRole{"", "superuser", "Admin"} {
		if role.Valid() {
			t.Errorf("Expected %q to be invalid", role)
		}
	}
}

func TestListingStatusValid(t *testing.T) {
	for _, status := range []ListingStatus{StatusPending, StatusApproved, StatusRejected} {
		if !status.Valid() {
			t.Errorf("Expected %s to be valid", status)
		}
	}
	for _, status := range []ListingStatus{"", "archived", "Approved"} {
		if status.Valid() {
			t.Errorf("Expected %q to be invalid", status)
		}
	}
}
