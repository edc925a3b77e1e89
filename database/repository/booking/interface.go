package bookingRepo

import (
	"context"

	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines persistence operations for bookings. Status
// transitions go through UpdateStatusConditional so a lost race leaves the
// record untouched.
type BookingRepository interface {
	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// CreateIfSlotFree inserts a new booking only if the caregiver has no
	// committed (confirmed or in_progress) booking overlapping the requested
	// window. The overlap check and the insert run in one transaction; the
	// resolver's availability check is advisory only.
	CreateIfSlotFree(ctx context.Context, booking *models.Booking) error

	// UpdateStatusConditional applies set-fields to a booking only while its
	// status still equals from, returning the updated document. It returns
	// ErrNotFound when the booking is absent, owned by someone else per the
	// extra filter, or no longer in the expected state.
	UpdateStatusConditional(ctx context.Context, bookingID, from string, extra bson.M, set bson.M) (*models.Booking, error)

	// FindCommitted returns the caregiver's bookings with status confirmed or
	// in_progress intersecting the date range (inclusive).
	FindCommitted(ctx context.Context, caregiverID, fromDate, toDate string) ([]models.Booking, error)

	// FindConfirmedOnOrBefore returns confirmed bookings scheduled on or
	// before the given date, for the no-show sweep.
	FindConfirmedOnOrBefore(ctx context.Context, date string) ([]models.Booking, error)
}
