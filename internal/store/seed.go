package store

import (
	"time"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/shopspring/decimal"
)

func strptr(s string) *string { return &s }

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp: " + value)
	}
	return t
}

// Seed loads the demo fixtures: four users (one admin, three agency owners),
// their agencies, the category tree and a handful of listings and messages.
// Intended to run once at startup on an empty store.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []models.User{
		{ID: "1", Email: "admin@example.com", Name: "Admin User", Role: models.RoleAdmin, Verified: true, CreatedAt: seedTime("2023-01-01T00:00:00Z")},
		{ID: "2", Email: "agency1@example.com", Name: "Luxury Homes Agency", Role: models.RoleAgency, Verified: true, CreatedAt: seedTime("2023-01-02T00:00:00Z")},
		{ID: "3", Email: "agency2@example.com", Name: "CarSell Professional", Role: models.RoleAgency, Verified: true, CreatedAt: seedTime("2023-01-03T00:00:00Z")},
		{ID: "4", Email: "agency3@example.com", Name: "Tech Gear Pro", Role: models.RoleAgency, Verified: false, CreatedAt: seedTime("2023-01-04T00:00:00Z")},
	}

	s.agencies = []models.Agency{
		{
			ID: "1", UserID: "2", Name: "Luxury Homes Agency",
			Description: "We specialize in high-end real estate properties for discerning clients.",
			Address:     "123 Luxury Lane, Beverly Hills, CA 90210",
			Phone:       "+1 (123) 456-7890",
			Email:       "info@luxuryhomes.example.com",
			Website:     strptr("https://luxuryhomes.example.com"),
			Verified:    true,
		},
		{
			ID: "2", UserID: "3", Name: "CarSell Professional",
			Description: "Premier automotive sales agency with a wide selection of vehicles.",
			Address:     "456 Auto Drive, Detroit, MI 48226",
			Phone:       "+1 (234) 567-8901",
			Email:       "sales@carsell.example.com",
			Website:     strptr("https://carsell.example.com"),
			Verified:    true,
		},
		{
			ID: "3", UserID: "4", Name: "Tech Gear Pro",
			Description: "Latest technology gadgets and electronics from trusted brands.",
			Address:     "789 Tech Ave, San Francisco, CA 94107",
			Phone:       "+1 (345) 678-9012",
			Email:       "sales@techgear.example.com",
			Website:     strptr("https://techgear.example.com"),
			Verified:    false,
		},
	}

	s.categories = []models.Category{
		{ID: "1", Name: "Real Estate", Description: "Homes, apartments, land, and commercial properties", Icon: "home", Slug: "real-estate"},
		{ID: "2", Name: "Vehicles", Description: "Cars, motorcycles, boats, and other vehicles", Icon: "car", Slug: "vehicles"},
		{ID: "3", Name: "Electronics", Description: "Computers, phones, TVs, and other electronic devices", Icon: "smartphone", Slug: "electronics"},
		{ID: "4", Name: "Furniture", Description: "Home and office furniture, decor, and appliances", Icon: "sofa", Slug: "furniture"},
		{ID: "5", Name: "Jobs", Description: "Job listings and career opportunities", Icon: "briefcase", Slug: "jobs"},
		{ID: "6", Name: "Services", Description: "Professional services and skilled trades", Icon: "wrench", Slug: "services"},
	}

	s.listings = []models.Listing{
		{
			ID: "1", Title: "Luxury Penthouse with Ocean View",
			Description: "Beautiful 3-bedroom penthouse with panoramic ocean views, featuring high-end finishes, a gourmet kitchen, and private rooftop terrace.",
			Price:       decimal.NewFromInt(1500000),
			Images:      []string{"https://images.example.com/listings/penthouse-1.jpg", "https://images.example.com/listings/penthouse-2.jpg"},
			Status:      models.StatusApproved, AgencyID: "1", CategoryID: "1", Location: "Miami, FL",
			CreatedAt: seedTime("2023-02-01T00:00:00Z"), UpdatedAt: seedTime("2023-02-02T00:00:00Z"),
		},
		{
			ID: "2", Title: "Modern Downtown Loft",
			Description: "Spacious industrial-style loft in the heart of downtown, featuring exposed brick walls, high ceilings, and modern amenities.",
			Price:       decimal.NewFromInt(850000),
			Images:      []string{"https://images.example.com/listings/loft-1.jpg", "https://images.example.com/listings/loft-2.jpg"},
			Status:      models.StatusApproved, AgencyID: "1", CategoryID: "1", Location: "New York, NY",
			CreatedAt: seedTime("2023-02-03T00:00:00Z"), UpdatedAt: seedTime("2023-02-04T00:00:00Z"),
		},
		{
			ID: "3", Title: "2023 Mercedes-Benz S-Class",
			Description: "Brand new 2023 Mercedes-Benz S-Class with all available luxury features and extended warranty.",
			Price:       decimal.NewFromInt(120000),
			Images:      []string{"https://images.example.com/listings/sclass-1.jpg", "https://images.example.com/listings/sclass-2.jpg"},
			Status:      models.StatusApproved, AgencyID: "2", CategoryID: "2", Location: "Los Angeles, CA",
			CreatedAt: seedTime("2023-02-05T00:00:00Z"), UpdatedAt: seedTime("2023-02-06T00:00:00Z"),
		},
		{
			ID: "4", Title: "Tesla Model Y Performance",
			Description: "Like-new Tesla Model Y Performance with full self-driving capability, premium interior, and all available upgrades.",
			Price:       decimal.NewFromInt(65000),
			Images:      []string{"https://images.example.com/listings/modely-1.jpg", "https://images.example.com/listings/modely-2.jpg"},
			Status:      models.StatusPending, AgencyID: "2", CategoryID: "2", Location: "San Francisco, CA",
			CreatedAt: seedTime("2023-02-07T00:00:00Z"), UpdatedAt: seedTime("2023-02-08T00:00:00Z"),
		},
		{
			ID: "5", Title: "Apple MacBook Pro 16\" M2 Max",
			Description: "Latest Apple MacBook Pro with M2 Max chip, 32GB RAM, 1TB SSD, and AppleCare+ coverage.",
			Price:       decimal.NewFromInt(3499),
			Images:      []string{"https://images.example.com/listings/macbook-1.jpg"},
			Status:      models.StatusPending, AgencyID: "3", CategoryID: "3", Location: "Online",
			CreatedAt: seedTime("2023-02-09T00:00:00Z"), UpdatedAt: seedTime("2023-02-10T00:00:00Z"),
		},
		{
			ID: "6", Title: "Samsung 85\" Neo QLED 8K Smart TV",
			Description: "Immersive viewing experience with Samsung's latest 8K television featuring AI upscaling and premium sound system.",
			Price:       decimal.NewFromInt(5999),
			Images:      []string{"https://images.example.com/listings/qled-1.jpg"},
			Status:      models.StatusRejected, AgencyID: "3", CategoryID: "3", Location: "Online",
			CreatedAt: seedTime("2023-02-11T00:00:00Z"), UpdatedAt: seedTime("2023-02-12T00:00:00Z"),
		},
	}

	s.messages = []models.Message{
		{
			ID: "1", ListingID: "1", Name: "John Smith", Email: "john@example.com",
			Phone:   strptr("+1 (123) 456-7890"),
			Message: "I'm interested in this property. Could I schedule a viewing for this weekend?",
			AgencyID: "1", CreatedAt: seedTime("2023-03-01T00:00:00Z"), Read: false,
		},
		{
			ID: "2", ListingID: "3", Name: "Sarah Johnson", Email: "sarah@example.com",
			Phone:   strptr("+1 (234) 567-8901"),
			Message: "Is this car still available? I would like to see it in person and take it for a test drive.",
			AgencyID: "2", CreatedAt: seedTime("2023-03-02T00:00:00Z"), Read: true,
		},
	}
}
