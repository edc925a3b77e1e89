package handlers

import (
	"net/http"

	"carelink/middleware"
	"carelink/models"
	"carelink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the visit lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

func actor(c *gin.Context) (string, string) {
	return c.GetString(middleware.CtxActorID), c.GetString(middleware.CtxActorRole)
}

// CreateBookingRequest handles POST /api/bookings.
func (h *BookingHandler) CreateBookingRequest(c *gin.Context) {
	actorID, _ := actor(c)

	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBookingRequest(c.Request.Context(), actorID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// AcceptBooking handles POST /api/bookings/:id/accept.
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	actorID, _ := actor(c)

	updated, err := h.Service.AcceptBooking(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// StartBookingSession handles POST /api/bookings/:id/start.
func (h *BookingHandler) StartBookingSession(c *gin.Context) {
	actorID, _ := actor(c)

	var input struct {
		Proof *models.GeoPoint `json:"proof,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	updated, err := h.Service.StartBookingSession(c.Request.Context(), c.Param("id"), actorID, input.Proof)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CompleteBooking handles POST /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	actorID, _ := actor(c)

	var input struct {
		Notes string `json:"notes,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	updated, err := h.Service.CompleteBooking(c.Request.Context(), c.Param("id"), actorID, input.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actorID, actorRole := actor(c)

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), actorID, actorRole, input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// GetBookingDetails handles GET /api/bookings/:id. Profiles come back
// filtered for the viewer's role and the booking's state.
func (h *BookingHandler) GetBookingDetails(c *gin.Context) {
	actorID, actorRole := actor(c)

	details, err := h.Service.GetBookingDetails(c.Request.Context(), c.Param("id"), actorID, actorRole)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
