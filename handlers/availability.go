package handlers

import (
	"errors"
	"net/http"
	"time"

	profileRepo "carelink/database/repository/profile"
	"carelink/models"
	"carelink/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot resolver.
type AvailabilityHandler struct {
	Resolver availability.Resolver
}

func NewAvailabilityHandler(resolver availability.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{Resolver: resolver}
}

func validateDateRange(startDate, endDate string) []models.FieldError {
	var fields []models.FieldError
	from, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		fields = append(fields, models.FieldError{Field: "start", Message: "start must be YYYY-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		fields = append(fields, models.FieldError{Field: "end", Message: "end must be YYYY-MM-DD"})
	}
	if len(fields) == 0 && to.Before(from) {
		fields = append(fields, models.FieldError{Field: "end", Message: "end must not precede start"})
	}
	return fields
}

// GetCaregiverAvailability handles GET /api/caregivers/:id/availability. A bad
// date range is the caller's mistake and an unknown caregiver is absent;
// neither is a datastore failure.
func (h *AvailabilityHandler) GetCaregiverAvailability(c *gin.Context) {
	startDate := c.Query("start")
	endDate := c.Query("end")
	if fields := validateDateRange(startDate, endDate); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": fields})
		return
	}

	slots, err := h.Resolver.GetCaregiverAvailability(c.Request.Context(), c.Param("id"), startDate, endDate)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "caregiver not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
