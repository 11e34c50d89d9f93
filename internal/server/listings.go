package server

import (
	"errors"
	"net/http"

	"github.com/Dosseh91/listinghub/internal/catalog"
	"github.com/Dosseh91/listinghub/internal/contact"
	apierrors "github.com/Dosseh91/listinghub/internal/errors"
	"github.com/Dosseh91/listinghub/internal/models"
	"github.com/Dosseh91/listinghub/internal/monitoring"
	"github.com/gin-gonic/gin"
)

// handleHome serves the home payload: the newest approved listings plus the
// category tree.
func (s *APIServer) handleHome(c *gin.Context) {
	visible := catalog.Apply(s.store.Listings(), catalog.Criteria{Sort: catalog.SortNewest})
	featured := visible
	if len(featured) > 4 {
		featured = featured[:4]
	}

	c.JSON(http.StatusOK, gin.H{
		"featured":   featured,
		"categories": s.store.Categories(),
	})
}

// handleBrowseListings computes the visible listing set for the request's
// query parameters. The response echoes the normalized criteria as a query
// string so clients can share and bookmark the exact state.
func (s *APIServer) handleBrowseListings(c *gin.Context) {
	criteria := catalog.ParseQuery(c.Request.URL.Query())
	visible := catalog.Apply(s.store.Listings(), criteria)

	c.JSON(http.StatusOK, gin.H{
		"listings": visible,
		"total":    len(visible),
		"query":    criteria.Query().Encode(),
		"filtered": !criteria.IsZero(),
	})
}

// handleListingDetail serves a single listing with its agency and category.
func (s *APIServer) handleListingDetail(c *gin.Context) {
	l, ok := s.store.ListingByID(c.Param("id"))
	if !ok {
		respondError(c, apierrors.ErrListingNotFoundError)
		return
	}

	resp := gin.H{"listing": l}
	if agency, ok := s.store.AgencyByID(l.AgencyID); ok {
		resp["agency"] = agency
	}
	if category, ok := s.store.CategoryByID(l.CategoryID); ok {
		resp["category"] = category
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetCategories serves the category tree for the filter UI.
func (s *APIServer) handleGetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.store.Categories()})
}

// handleContact records a visitor contact message for a listing's agency.
func (s *APIServer) handleContact(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	msg, err := s.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrListingNotFound):
			respondError(c, apierrors.ErrListingNotFoundError)
		case errors.Is(err, contact.ErrInvalidMessage):
			respondError(c, apierrors.NewValidationError(err.Error()))
		default:
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}

	if m := monitoring.Get(); m != nil {
		m.MessagesCreated.Inc()
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// listingCounts tallies the collection by status for dashboards.
func (s *APIServer) listingCounts() gin.H {
	return gin.H{
		"pending":  len(s.store.ListingsByStatus(models.StatusPending)),
		"approved": len(s.store.ListingsByStatus(models.StatusApproved)),
		"rejected": len(s.store.ListingsByStatus(models.StatusRejected)),
	}
}
