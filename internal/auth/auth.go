package auth

import (
	"context"
	"fmt"

	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/session"
	"github.com/Dosseh91/listinghub/internal/store"
)

// Service handles login, logout and role checks. Login is a lookup against
// the user table: the password is accepted but never verified, which is the
// demo-auth contract of this system.
type Service struct {
	store    *store.Store
	sessions session.Store
}

// NewService creates a new auth service.
func NewService(st *store.Store, sessions session.Store) *Service {
	return &Service{store: st, sessions: sessions}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a registration request. Agency registrations
// also create the Agency record owned by the new user.
type RegisterRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Name        string          `json:"name" binding:"required"`
	Role        models.UserRole `json:"role" binding:"required,oneof=agency visitor"`
	AgencyName  string          `json:"agency_name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
}

// Login looks the user up by email and persists it as the current session.
// A miss fails with ErrInvalidCredentials and leaves the session untouched.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*models.User, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &user, nil
}

// Logout clears the current session. Signing out while signed out is fine.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current restores the persisted session user. Returns
// session.ErrNoSession when signed out.
func (s *Service) Current(ctx context.Context) (*models.User, error) {
	return s.sessions.Load(ctx)
}

// IsRole reports whether a current user exists and has the given role.
func (s *Service) IsRole(ctx context.Context, role models.UserRole) bool {
	user, err := s.sessions.Load(ctx)
	if err != nil {
		return false
	}
	return user.Role == role
}

// Register creates a new user, the owned agency record for agency signups,
// and signs the new user in.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if !req.Role.Valid() || req.Role == models.RoleAdmin {
		return nil, ErrInvalidRole
	}
	if _, exists := s.store.UserByEmail(req.Email); exists {
		return nil, ErrEmailAlreadyExists
	}
	if req.Role == models.RoleAgency && req.AgencyName == "" {
		return nil, ErrAgencyNameRequired
	}

	user, err := s.store.AddUser(ctx, models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Verified: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if req.Role == models.RoleAgency {
		_, err = s.store.AddAgency(ctx, models.Agency{
			UserID:      user.ID,
			Name:        req.AgencyName,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			Email:       req.Email,
			Verified:    false,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create agency: %w", err)
		}
	}

	if err := s.sessions.Save(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &user, nil
}
