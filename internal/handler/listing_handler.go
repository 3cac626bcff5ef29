package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staynest/service-stay/internal/application"
	"github.com/staynest/service-stay/internal/pkg/response"
)

// ListingHandler handles public HTTP requests for browsing listings.
type ListingHandler struct {
	service *application.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *application.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// RegisterRoutes registers the public listing routes.
func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	listings := r.Group("/api/v1/listings")
	{
		listings.GET("", h.ListListings)
		listings.GET("/:id", h.GetListing)
	}
}

// ListListings handles GET /api/v1/listings?q=&sort=.
func (h *ListingHandler) ListListings(c *gin.Context) {
	result, err := h.service.ListListings(c.Request.Context(), c.Query("q"), c.Query("sort"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetListing handles GET /api/v1/listings/:id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	result, err := h.service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
