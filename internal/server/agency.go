package server

import (
	"errors"
	"net/http"

	"github.com/Dosseh91/listinghub/internal/contact"
	apierrors "github.com/Dosseh91/listinghub/internal/errors"
	"github.com/Dosseh91/listinghub/internal/listing"
	"github.com/Dosseh91/listinghub/internal/middleware"
	"github.com/Dosseh91/listinghub/internal/monitoring"
	"github.com/gin-gonic/gin"
)

// handleAgencyDashboard serves the agency dashboard payload: the agency's
// profile, its listings in every status and its inbox.
func (s *APIServer) handleAgencyDashboard(c *gin.Context) {
	userID := middleware.GetUserIDFromContext(c)

	agency, ok := s.store.AgencyByUserID(userID)
	if !ok {
		respondError(c, apierrors.ErrAgencyNotFoundError)
		return
	}

	listings := s.store.ListingsByAgency(agency.ID)
	messages, unread := s.store.MessagesByAgency(agency.ID), 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"agency":   agency,
		"listings": listings,
		"messages": messages,
		"unread":   unread,
	})
}

// handleAgencyListings returns the signed-in agency's own listings.
func (s *APIServer) handleAgencyListings(c *gin.Context) {
	listings, err := s.listingService.ForAgencyUser(middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, apierrors.ErrAgencyNotFoundError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": len(listings)})
}

// handleCreateListing submits a new listing draft; it enters the collection
// as pending until an admin reviews it.
func (s *APIServer) handleCreateListing(c *gin.Context) {
	var draft listing.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	created, err := s.listingService.Create(c.Request.Context(), middleware.GetUserIDFromContext(c), &draft)
	if err != nil {
		respondListingError(c, err)
		return
	}

	if m := monitoring.Get(); m != nil {
		m.ListingsCreated.Inc()
	}
	c.JSON(http.StatusCreated, gin.H{"listing": created})
}

// handleUpdateListing replaces the editable fields of an owned listing.
func (s *APIServer) handleUpdateListing(c *gin.Context) {
	var draft listing.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	updated, err := s.listingService.Update(c.Request.Context(), middleware.GetUserIDFromContext(c), c.Param("id"), &draft)
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": updated})
}

// handleDeleteListing removes an owned listing.
func (s *APIServer) handleDeleteListing(c *gin.Context) {
	err := s.listingService.Delete(c.Request.Context(), middleware.GetUserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// handleAgencyMessages returns the agency's inbox with the unread count.
func (s *APIServer) handleAgencyMessages(c *gin.Context) {
	messages, unread, err := s.contactService.ForAgencyUser(middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, apierrors.ErrAgencyNotFoundError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "unread": unread})
}

// handleMarkMessageRead flags one of the agency's messages as read.
func (s *APIServer) handleMarkMessageRead(c *gin.Context) {
	err := s.contactService.MarkRead(c.Request.Context(), middleware.GetUserIDFromContext(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrMessageNotFound):
			respondError(c, apierrors.ErrMessageNotFoundError)
		case errors.Is(err, contact.ErrMessageNotOwned):
			respondError(c, apierrors.ErrForbiddenError)
		default:
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// respondListingError maps listing service errors to API errors.
func respondListingError(c *gin.Context, err error) {
	var validationErr *listing.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondError(c, apierrors.NewValidationError(validationErr.Fields))
	case errors.Is(err, listing.ErrListingNotFound):
		respondError(c, apierrors.ErrListingNotFoundError)
	case errors.Is(err, listing.ErrListingNotOwned):
		respondError(c, apierrors.ErrListingNotOwnedError)
	case errors.Is(err, listing.ErrAgencyNotFound):
		respondError(c, apierrors.ErrAgencyNotFoundError)
	case errors.Is(err, listing.ErrInvalidStatus):
		respondError(c, apierrors.NewInvalidRequestError("Unknown listing status"))
	default:
		respondError(c, apierrors.ErrInternalServerError)
	}
}
