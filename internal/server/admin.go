package server

import (
	"net/http"

	apierrors "github.com/Dosseh91/listinghub/internal/errors"
	"github.com/Dosseh91/listinghub/internal/logging"
	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/monitoring"
	"github.com/gin-gonic/gin"
)

// handleAdminDashboard serves the moderation dashboard payload: counts by
// status and the pending review queue.
func (s *APIServer) handleAdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"counts":   s.listingCounts(),
		"queue":    s.store.ListingsByStatus(models.StatusPending),
		"agencies": s.store.Agencies(),
	})
}

// handleAdminListings returns listings, optionally restricted to one status.
func (s *APIServer) handleAdminListings(c *gin.Context) {
	status := models.ListingStatus(c.Query("status"))
	if status == "" {
		listings := s.store.Listings()
		c.JSON(http.StatusOK, gin.H{"listings": listings, "total": len(listings)})
		return
	}
	if !status.Valid() {
		respondError(c, apierrors.NewInvalidRequestError("Unknown listing status"))
		return
	}
	listings := s.store.ListingsByStatus(status)
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": len(listings)})
}

// statusUpdateRequest is the admin moderation decision body.
type statusUpdateRequest struct {
	Status models.ListingStatus `json:"status" binding:"required"`
	Reason *string              `json:"reason,omitempty"`
}

// handleUpdateListingStatus applies a moderation decision. All transitions
// are permitted, including resetting a reviewed listing back to pending.
func (s *APIServer) handleUpdateListingStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	updated, err := s.listingService.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason)
	if err != nil {
		respondListingError(c, err)
		return
	}

	logging.LogStatusChange(c.GetString("request_id"), updated.ID, string(updated.Status), req.Reason)
	if m := monitoring.Get(); m != nil {
		m.StatusTransitions.WithLabelValues(string(updated.Status)).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"listing": updated})
}

// handleAdminAgencies lists all agencies for the verification view.
func (s *APIServer) handleAdminAgencies(c *gin.Context) {
	agencies := s.store.Agencies()
	c.JSON(http.StatusOK, gin.H{"agencies": agencies, "total": len(agencies)})
}

// handleSetAgencyVerified toggles the verified flag on an agency.
func (s *APIServer) handleSetAgencyVerified(c *gin.Context) {
	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	id := c.Param("id")
	if _, ok := s.store.AgencyByID(id); !ok {
		respondError(c, apierrors.ErrAgencyNotFoundError)
		return
	}
	if err := s.store.SetAgencyVerified(c.Request.Context(), id, req.Verified); err != nil {
		respondError(c, apierrors.ErrInternalServerError)
		return
	}

	agency, _ := s.store.AgencyByID(id)
	c.JSON(http.StatusOK, gin.H{"agency": agency})
}

// categoryRequest is the admin category create/update body.
type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Slug        string `json:"slug"`
}

// handleCreateCategory creates a category; the slug is derived from the name
// unless provided explicitly.
func (s *APIServer) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	created, err := s.store.CreateCategory(c.Request.Context(), models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Slug:        req.Slug,
	})
	if err != nil {
		respondError(c, apierrors.ErrInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": created})
}

// handleUpdateCategory edits a category. The slug is only changed when the
// caller supplies one; it is not rederived from an edited name.
func (s *APIServer) handleUpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	id := c.Param("id")
	if _, ok := s.store.CategoryByID(id); !ok {
		respondError(c, apierrors.ErrCategoryNotFoundError)
		return
	}

	err := s.store.UpdateCategory(c.Request.Context(), models.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Slug:        req.Slug,
	})
	if err != nil {
		respondError(c, apierrors.ErrInternalServerError)
		return
	}

	updated, _ := s.store.CategoryByID(id)
	c.JSON(http.StatusOK, gin.H{"category": updated})
}

// handleDeleteCategory removes a category.
func (s *APIServer) handleDeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.store.CategoryByID(id); !ok {
		respondError(c, apierrors.ErrCategoryNotFoundError)
		return
	}
	if err := s.store.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, apierrors.ErrInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
