package booking

import (
	"context"
	"time"

	"carelink/config"
	bookingRepo "carelink/database/repository/booking"
	profileRepo "carelink/database/repository/profile"
	"carelink/models"
	"carelink/services/audit"
	"carelink/services/availability"
	"carelink/services/notification"
	"carelink/services/payment"
	"carelink/services/tasks"

	"go.uber.org/zap"
)

// BookingService owns the visit lifecycle. All transitions are derived from
// (state, timestamp delta) on the server; client-supplied flags never decide
// fees or access levels.
type BookingService interface {
	CreateBookingRequest(ctx context.Context, patientID string, input models.BookingRequestInput) (*models.Booking, error)
	AcceptBooking(ctx context.Context, bookingID, caregiverID string) (*models.Booking, error)
	StartBookingSession(ctx context.Context, bookingID, caregiverID string, proof *models.GeoPoint) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, caregiverID, notes string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID, actorRole, reason string) (*models.Booking, error)
	GetBookingDetails(ctx context.Context, bookingID, viewerID, viewerRole string) (*BookingDetails, error)
	// MarkNoShows transitions confirmed bookings whose start window has fully
	// lapsed. Driven by the background sweep, never by client calls.
	MarkNoShows(ctx context.Context, now time.Time) (int, error)
}

// BookingDetails is a booking plus the counterparty profiles as the viewer
// is allowed to see them.
type BookingDetails struct {
	Booking   models.Booking           `json:"booking"`
	Patient   *models.PatientProfile   `json:"patient,omitempty"`
	Caregiver *models.CaregiverProfile `json:"caregiver,omitempty"`
}

// Policy holds the business-rule constants of the lifecycle. They are
// configuration, not structural logic.
type Policy struct {
	StartWindow       time.Duration
	CancelCutoff      time.Duration
	LateCancelFeeRate float64
	CheckinInterval   time.Duration
}

// PolicyFromConfig builds the policy from the loaded app config.
func PolicyFromConfig() Policy {
	cfg := config.AppConfig
	return Policy{
		StartWindow:       time.Duration(cfg.StartWindowMinutes) * time.Minute,
		CancelCutoff:      time.Duration(cfg.CancelCutoffHours) * time.Hour,
		LateCancelFeeRate: cfg.LateCancelFeeRate,
		CheckinInterval:   time.Duration(cfg.CheckinIntervalMinutes) * time.Minute,
	}
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Patients   profileRepo.PatientRepository
	Caregivers profileRepo.CaregiverRepository
	Resolver   availability.Resolver
	Notifier   notification.Dispatcher
	Settlement payment.SettlementProcessor
	Audit      audit.Recorder
	Scheduler  tasks.Scheduler
	Policy     Policy
	Logger     *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// notify delivers best effort: a push failure never fails the transition
// that triggered it.
func (svc *DefaultBookingService) notify(ctx context.Context, n models.Notification) {
	if svc.Notifier == nil {
		return
	}
	if err := svc.Notifier.Dispatch(ctx, n); err != nil {
		svc.Logger.Warn("notification dispatch failed",
			zap.String("type", n.Type),
			zap.String("recipient", n.RecipientID),
			zap.Error(err),
		)
	}
}

func (svc *DefaultBookingService) record(ctx context.Context, actorID, action, entityID string, metadata map[string]string) {
	if svc.Audit == nil {
		return
	}
	svc.Audit.Record(ctx, actorID, action, entityID, metadata)
}
