package server

import (
	"errors"
	"net/http"

	"github.com/Dosseh91/listinghub/internal/auth"
	"github.com/Dosseh91/listinghub/internal/config"
	"github.com/Dosseh91/listinghub/internal/contact"
	apierrors "github.com/Dosseh91/listinghub/internal/errors"
	"github.com/Dosseh91/listinghub/internal/listing"
	"github.com/Dosseh91/listinghub/internal/logging"
	"github.com/Dosseh91/listinghub/internal/middleware"
	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/monitoring"
	"github.com/Dosseh91/listinghub/internal/session"
	"github.com/Dosseh91/listinghub/internal/store"
	"github.com/gin-gonic/gin"
)

// APIServer represents the main API server
type APIServer struct {
	config         *config.Config
	router         *gin.Engine
	store          *store.Store
	sessions       session.Store
	authService    *auth.Service
	listingService *listing.Service
	contactService *contact.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(cfg *config.Config, st *store.Store, sessions session.Store) *APIServer {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware in order
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(monitoring.MetricsMiddleware())
	router.Use(logging.RequestLogger())

	srv := &APIServer{
		config:         cfg,
		router:         router,
		store:          st,
		sessions:       sessions,
		authService:    auth.NewService(st, sessions),
		listingService: listing.NewService(st),
		contactService: contact.NewService(st, cfg.Contact.SubmitDelay),
	}

	srv.setupRoutes()
	return srv
}

// Router returns the gin router
func (s *APIServer) Router() http.Handler {
	return s.router
}

// setupRoutes configures all routes
func (s *APIServer) setupRoutes() {
	// Health check
	s.router.GET("/health", s.healthCheck)

	// Public pages
	s.router.GET("/", s.handleHome)
	s.router.GET("/listings", s.handleBrowseListings)
	s.router.GET("/listings/:id", s.handleListingDetail)
	s.router.GET("/categories", s.handleGetCategories)
	s.router.POST("/contact", s.handleContact)

	// Auth endpoints (public)
	s.router.GET("/login", s.handleSession)
	s.router.POST("/login", s.handleLogin)
	s.router.POST("/logout", s.handleLogout)
	s.router.POST("/register", s.handleRegister)

	// Role-gated dashboard pages: the guard redirects signed-out visitors to
	// the login page (preserving the requested path) and wrong roles home.
	s.router.GET("/admin/dashboard", middleware.Guard(s.sessions, models.RoleAdmin), s.handleAdminDashboard)
	s.router.GET("/agency/dashboard", middleware.Guard(s.sessions, models.RoleAgency), s.handleAgencyDashboard)

	// API v1 management routes
	v1 := s.router.Group("/api/v1")
	{
		// Agency routes (protected - requires agency role)
		agency := v1.Group("/agency")
		agency.Use(middleware.RequireSession(s.sessions))
		agency.Use(middleware.RequireAgency())
		{
			agency.GET("/listings", s.handleAgencyListings)
			agency.POST("/listings", s.handleCreateListing)
			agency.PUT("/listings/:id", s.handleUpdateListing)
			agency.DELETE("/listings/:id", s.handleDeleteListing)
			agency.GET("/messages", s.handleAgencyMessages)
			agency.PUT("/messages/:id/read", s.handleMarkMessageRead)
		}

		// Admin routes (protected - requires admin role)
		admin := v1.Group("/admin")
		admin.Use(middleware.RequireSession(s.sessions))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/listings", s.handleAdminListings)
			admin.PUT("/listings/:id/status", s.handleUpdateListingStatus)
			admin.GET("/agencies", s.handleAdminAgencies)
			admin.PUT("/agencies/:id/verified", s.handleSetAgencyVerified)
			admin.POST("/categories", s.handleCreateCategory)
			admin.PUT("/categories/:id", s.handleUpdateCategory)
			admin.DELETE("/categories/:id", s.handleDeleteCategory)
		}
	}

	// Unknown paths redirect to home
	s.router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/")
	})
}

// Health check handler
func (s *APIServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "api",
	})
}

// handleSession reports the current session state; used by the login page to
// decide whether a user is already signed in.
func (s *APIServer) handleSession(c *gin.Context) {
	user, err := s.authService.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		respondError(c, apierrors.ErrSessionUnavailableError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

// handleLogin handles user login
func (s *APIServer) handleLogin(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	user, err := s.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			if m := monitoring.Get(); m != nil {
				m.LoginAttempts.WithLabelValues("failure").Inc()
			}
			respondError(c, apierrors.ErrInvalidCredentialsError)
		} else {
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}

	if m := monitoring.Get(); m != nil {
		m.LoginAttempts.WithLabelValues("success").Inc()
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// handleLogout handles user logout
func (s *APIServer) handleLogout(c *gin.Context) {
	if err := s.authService.Logout(c.Request.Context()); err != nil {
		respondError(c, apierrors.ErrSessionUnavailableError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// handleRegister handles user registration
func (s *APIServer) handleRegister(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	user, err := s.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			respondError(c, apierrors.NewInvalidRequestError("Email already registered"))
		case errors.Is(err, auth.ErrInvalidRole):
			respondError(c, apierrors.NewValidationError("Role must be agency or visitor"))
		case errors.Is(err, auth.ErrAgencyNameRequired):
			respondError(c, apierrors.NewValidationError("Agency name is required for agency accounts"))
		default:
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// respondError sends a standardized error response
func respondError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.HTTPStatus, apierrors.ErrorResponse{
		Error:     *err,
		RequestID: c.GetString("request_id"),
	})
}
