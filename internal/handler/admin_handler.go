package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staynest/service-stay/internal/application"
	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/pkg/auth"
	"github.com/staynest/service-stay/internal/pkg/middleware"
	"github.com/staynest/service-stay/internal/pkg/response"
)

// AdminHandler handles admin HTTP requests for listing and booking management.
type AdminHandler struct {
	listings *application.ListingService
	bookings *application.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(listings *application.ListingService, bookings *application.BookingService) *AdminHandler {
	return &AdminHandler{listings: listings, bookings: bookings}
}

// RegisterRoutes registers admin routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager, policy identity.AdminPolicy) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireAdmin(policy))
	{
		admin.POST("/listings", h.CreateListing)
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/:id/confirm", h.ConfirmBooking)
		admin.GET("/stats/bookings", h.BookingStats)
	}
}

// CreateListing handles POST /api/v1/admin/listings.
func (h *AdminHandler) CreateListing(c *gin.Context) {
	var req application.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.listings.CreateListing(c.Request.Context(), middleware.GetAuthContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBookings handles GET /api/v1/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	result, err := h.bookings.AllBookings(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ConfirmBooking handles POST /api/v1/admin/bookings/:id/confirm.
func (h *AdminHandler) ConfirmBooking(c *gin.Context) {
	result, err := h.bookings.ConfirmBooking(c.Request.Context(), middleware.GetAuthContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// BookingStats handles GET /api/v1/admin/stats/bookings.
func (h *AdminHandler) BookingStats(c *gin.Context) {
	stats, err := h.bookings.Stats(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
