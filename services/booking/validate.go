package booking

import (
	"time"

	"carelink/models"
)

const minutesPerDay = 24 * 60

// validateBookingInput checks the request shape. Field problems are
// collected and surfaced verbatim so the UI can attach them to inputs.
func validateBookingInput(input models.BookingRequestInput) *ValidationError {
	var fields []models.FieldError

	if input.CaregiverID == "" {
		fields = append(fields, models.FieldError{Field: "caregiver_id", Message: "caregiver_id is required"})
	}
	if _, err := time.Parse("2006-01-02", input.ServiceDate); err != nil {
		fields = append(fields, models.FieldError{Field: "service_date", Message: "service_date must be YYYY-MM-DD"})
	}
	if input.Start < 0 || input.Start >= minutesPerDay {
		fields = append(fields, models.FieldError{Field: "start", Message: "start must be minutes from midnight"})
	}
	if input.End <= input.Start || input.End > minutesPerDay {
		fields = append(fields, models.FieldError{Field: "end", Message: "end must fall after start on the same day"})
	}
	switch input.Location.Type {
	case models.LocationHome, models.LocationFacility, models.LocationOther:
	default:
		fields = append(fields, models.FieldError{Field: "location.type", Message: "location type must be home, facility or other"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
