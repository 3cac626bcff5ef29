package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/staynest/service-stay/internal/application"
	"github.com/staynest/service-stay/internal/pkg/auth"
	"github.com/staynest/service-stay/internal/pkg/middleware"
	"github.com/staynest/service-stay/internal/pkg/response"
)

// BookingHandler handles HTTP requests for a signed-in user's bookings.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	bookings := r.Group("/api/v1/bookings")
	bookings.Use(middleware.AuthMiddleware(jwtManager))
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), middleware.GetAuthContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListBookings handles GET /api/v1/bookings and returns the caller's bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	result, err := h.service.MyBookings(c.Request.Context(), middleware.GetAuthContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
