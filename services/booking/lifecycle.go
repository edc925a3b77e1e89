package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "carelink/database/repository/booking"
	profileRepo "carelink/database/repository/profile"
	"carelink/models"
	"carelink/services/privacy"
	"carelink/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingRequest validates the request, prices the visit and persists
// it in pending. The resolver's availability check is optimistic; the repo
// re-checks overlap inside the commit.
func (svc *DefaultBookingService) CreateBookingRequest(ctx context.Context, patientID string, input models.BookingRequestInput) (*models.Booking, error) {
	if verr := validateBookingInput(input); verr != nil {
		return nil, verr
	}

	patient, err := svc.Patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "patient"}
		}
		return nil, &DependencyError{Op: "createBookingRequest", Err: err}
	}
	if !patient.ActiveSubscription {
		return nil, &ConflictError{Code: CodeSubscriptionRequired, Message: "an active subscription is required to request visits"}
	}

	caregiver, err := svc.Caregivers.GetByID(ctx, input.CaregiverID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "caregiver"}
		}
		return nil, &DependencyError{Op: "createBookingRequest", Err: err}
	}
	if !caregiver.Verified || !caregiver.BackgroundCheckCleared {
		return nil, &ConflictError{Code: CodeCaregiverUnavailable, Message: "caregiver is not available for booking"}
	}

	available, err := svc.Resolver.IsSlotAvailable(ctx, input.CaregiverID, input.ServiceDate, input.Start, input.End)
	if err != nil {
		return nil, &DependencyError{Op: "createBookingRequest", Err: err}
	}
	if !available {
		return nil, &ConflictError{Code: CodeSlotConflict, Message: "requested slot is not available"}
	}

	durationHours, totalCost := visitCost(input.Start, input.End, caregiver.HourlyRate)
	booking := &models.Booking{
		ID:             uuid.New().String(),
		PatientID:      patientID,
		CaregiverID:    input.CaregiverID,
		ServiceDate:    input.ServiceDate,
		Start:          input.Start,
		End:            input.End,
		RecurrenceRule: input.RecurrenceRule,
		HourlyRate:     caregiver.HourlyRate,
		DurationHours:  durationHours,
		TotalCost:      totalCost,
		Status:         models.StatusPending,
		CreatedAt:      svc.now(),
		Location:       input.Location,
		CareNeeds:      input.CareNeeds,
	}

	if err := svc.Repo.CreateIfSlotFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &ConflictError{Code: CodeSlotConflict, Message: "requested slot is no longer available"}
		}
		return nil, &DependencyError{Op: "createBookingRequest", Err: err}
	}

	svc.record(ctx, patientID, models.AuditBookingCreated, booking.ID, map[string]string{"caregiver_id": booking.CaregiverID})
	svc.notify(ctx, models.Notification{
		RecipientID:   booking.CaregiverID,
		RecipientRole: models.RoleCaregiver,
		Type:          models.NotifyBookingRequest,
		Title:         "New visit request",
		Body:          fmt.Sprintf("You have a new visit request for %s.", booking.ServiceDate),
		Data:          map[string]string{"booking_id": booking.ID},
	})

	return booking, nil
}

// AcceptBooking confirms a pending booking. Only the assigned caregiver may
// accept; a booking that is absent, owned by someone else, or no longer
// pending is reported the same way.
func (svc *DefaultBookingService) AcceptBooking(ctx context.Context, bookingID, caregiverID string) (*models.Booking, error) {
	now := svc.now()
	updated, err := svc.Repo.UpdateStatusConditional(ctx, bookingID, models.StatusPending,
		map[string]interface{}{"caregiver_id": caregiverID},
		map[string]interface{}{"status": models.StatusConfirmed, "confirmed_at": now},
	)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "acceptBooking", Err: err}
	}

	// The caregiver now holds limited access to patient data; the privacy
	// filter widens disclosure from this audit point onward.
	svc.record(ctx, caregiverID, models.AuditAccessLimited, updated.ID, map[string]string{"patient_id": updated.PatientID})
	svc.notify(ctx, models.Notification{
		RecipientID:   updated.PatientID,
		RecipientRole: models.RolePatient,
		Type:          models.NotifyBookingConfirmed,
		Title:         "Visit confirmed",
		Body:          fmt.Sprintf("Your visit on %s has been confirmed.", updated.ServiceDate),
		Data:          map[string]string{"booking_id": updated.ID},
	})
	svc.scheduleReminders(ctx, updated)

	return updated, nil
}

// StartBookingSession begins the visit. It is valid only from confirmed and
// only within the configured window around the scheduled start.
func (svc *DefaultBookingService) StartBookingSession(ctx context.Context, bookingID, caregiverID string, proof *models.GeoPoint) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "startBookingSession", Err: err}
	}
	if b.CaregiverID != caregiverID || b.Status != models.StatusConfirmed {
		return nil, &NotFoundError{Entity: "booking"}
	}

	scheduled, err := b.ScheduledStart(time.Local)
	if err != nil {
		return nil, &DependencyError{Op: "startBookingSession", Err: err}
	}
	now := svc.now()
	delta := now.Sub(scheduled)
	if delta < -svc.Policy.StartWindow || delta > svc.Policy.StartWindow {
		return nil, &ConflictError{Code: CodeOutsideStartWindow, Message: "session can only start near the scheduled time"}
	}

	set := map[string]interface{}{"status": models.StatusInProgress, "started_at": now}
	if proof != nil {
		set["start_proof"] = proof
	}
	updated, err := svc.Repo.UpdateStatusConditional(ctx, bookingID, models.StatusConfirmed,
		map[string]interface{}{"caregiver_id": caregiverID}, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "startBookingSession", Err: err}
	}

	svc.record(ctx, caregiverID, models.AuditAccessFull, updated.ID, map[string]string{"patient_id": updated.PatientID})
	svc.scheduleCheckins(ctx, updated, now)

	return updated, nil
}

// CompleteBooking ends an in-progress visit, records notes, settles payment
// and asks both parties for a review.
func (svc *DefaultBookingService) CompleteBooking(ctx context.Context, bookingID, caregiverID, notes string) (*models.Booking, error) {
	now := svc.now()
	set := map[string]interface{}{"status": models.StatusCompleted, "completed_at": now}
	if notes != "" {
		set["completion_notes"] = notes
	}
	updated, err := svc.Repo.UpdateStatusConditional(ctx, bookingID, models.StatusInProgress,
		map[string]interface{}{"caregiver_id": caregiverID}, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "completeBooking", Err: err}
	}

	// The transition is already committed; settlement failures are logged
	// and retried out of band rather than unwinding the visit.
	if svc.Settlement != nil {
		if err := svc.Settlement.SettleVisit(ctx, updated.ID, updated.TotalCost); err != nil {
			svc.Logger.Error("visit settlement failed",
				zap.String("booking_id", updated.ID), zap.Error(err))
		}
	}

	svc.record(ctx, caregiverID, models.AuditBookingDone, updated.ID, nil)
	for _, n := range []models.Notification{
		{RecipientID: updated.PatientID, RecipientRole: models.RolePatient, Type: models.NotifyReviewRequest,
			Title: "How was your visit?", Body: "Please review your caregiver.", Data: map[string]string{"booking_id": updated.ID}},
		{RecipientID: updated.CaregiverID, RecipientRole: models.RoleCaregiver, Type: models.NotifyReviewRequest,
			Title: "How was your visit?", Body: "Please review your patient.", Data: map[string]string{"booking_id": updated.ID}},
	} {
		svc.notify(ctx, n)
	}

	return updated, nil
}

// CancelBooking voids a pending or confirmed booking. The fee is derived
// from the time remaining before the scheduled start, never from client
// input.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID, actorRole, reason string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "cancelBooking", Err: err}
	}

	switch actorRole {
	case models.RolePatient:
		if b.PatientID != actorID {
			return nil, &AuthorizationError{Message: "actor is not a participant of this booking"}
		}
	case models.RoleCaregiver:
		if b.CaregiverID != actorID {
			return nil, &AuthorizationError{Message: "actor is not a participant of this booking"}
		}
	default:
		return nil, &AuthorizationError{Message: "unknown actor role"}
	}

	// Only a booking that has not yet started can be voided; an in-progress
	// visit must run to completion.
	if b.IsTerminal() || b.Status == models.StatusInProgress {
		return nil, &NotFoundError{Entity: "booking"}
	}

	scheduled, err := b.ScheduledStart(time.Local)
	if err != nil {
		return nil, &DependencyError{Op: "cancelBooking", Err: err}
	}
	now := svc.now()
	fee := ComputeCancellationFee(b.TotalCost, scheduled.Sub(now), svc.Policy.CancelCutoff, svc.Policy.LateCancelFeeRate)

	updated, err := svc.Repo.UpdateStatusConditional(ctx, bookingID, b.Status, nil,
		map[string]interface{}{
			"status":           models.StatusCancelled,
			"cancelled_at":     now,
			"cancel_reason":    reason,
			"cancelled_by":     actorRole,
			"cancellation_fee": fee,
		})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "cancelBooking", Err: err}
	}

	if fee > 0 && svc.Settlement != nil {
		if err := svc.Settlement.ChargeCancellationFee(ctx, updated.ID, fee); err != nil {
			svc.Logger.Error("cancellation fee capture failed",
				zap.String("booking_id", updated.ID), zap.Error(err))
		}
	}

	svc.record(ctx, actorID, models.AuditBookingVoided, updated.ID, map[string]string{"fee": fmt.Sprintf("%.2f", fee)})

	counterpartID, counterpartRole := updated.CaregiverID, models.RoleCaregiver
	if actorRole == models.RoleCaregiver {
		counterpartID, counterpartRole = updated.PatientID, models.RolePatient
	}
	body := fmt.Sprintf("The visit on %s was cancelled: %s", updated.ServiceDate, reason)
	if fee > 0 {
		body = fmt.Sprintf("%s (a cancellation fee of %.2f applies)", body, fee)
	}
	svc.notify(ctx, models.Notification{
		RecipientID:   counterpartID,
		RecipientRole: counterpartRole,
		Type:          models.NotifyBookingCancelled,
		Title:         "Visit cancelled",
		Body:          body,
		Data:          map[string]string{"booking_id": updated.ID},
	})

	return updated, nil
}

// GetBookingDetails returns the booking together with counterparty profiles
// as redacted for the viewer. Non-participants get the same answer as for a
// booking that does not exist.
func (svc *DefaultBookingService) GetBookingDetails(ctx context.Context, bookingID, viewerID, viewerRole string) (*BookingDetails, error) {
	b, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, &DependencyError{Op: "getBookingDetails", Err: err}
	}

	switch viewerRole {
	case models.RoleAdmin:
	case models.RolePatient:
		if b.PatientID != viewerID {
			return nil, &NotFoundError{Entity: "booking"}
		}
	case models.RoleCaregiver:
		if b.CaregiverID != viewerID {
			return nil, &NotFoundError{Entity: "booking"}
		}
	default:
		return nil, &NotFoundError{Entity: "booking"}
	}

	details := &BookingDetails{Booking: *b}

	patient, err := svc.Patients.GetByID(ctx, b.PatientID)
	if err == nil {
		filtered := privacy.FilterPatientProfile(patient, b, viewerRole)
		details.Patient = &filtered
	} else if !errors.Is(err, profileRepo.ErrNotFound) {
		return nil, &DependencyError{Op: "getBookingDetails", Err: err}
	}

	caregiver, err := svc.Caregivers.GetByID(ctx, b.CaregiverID)
	if err == nil {
		filtered := privacy.FilterCaregiverProfile(caregiver, b, viewerRole)
		details.Caregiver = &filtered
	} else if !errors.Is(err, profileRepo.ErrNotFound) {
		return nil, &DependencyError{Op: "getBookingDetails", Err: err}
	}

	return details, nil
}

// MarkNoShows sweeps confirmed bookings whose start window has fully lapsed
// into no_show. The lost-race case (caregiver started in the meantime) is
// skipped by the conditional update.
func (svc *DefaultBookingService) MarkNoShows(ctx context.Context, now time.Time) (int, error) {
	due, err := svc.Repo.FindConfirmedOnOrBefore(ctx, now.Format("2006-01-02"))
	if err != nil {
		return 0, &DependencyError{Op: "markNoShows", Err: err}
	}

	marked := 0
	for i := range due {
		b := &due[i]
		scheduled, err := b.ScheduledStart(time.Local)
		if err != nil {
			svc.Logger.Warn("skipping booking with invalid schedule",
				zap.String("booking_id", b.ID), zap.Error(err))
			continue
		}
		if now.Sub(scheduled) <= svc.Policy.StartWindow {
			continue
		}

		updated, err := svc.Repo.UpdateStatusConditional(ctx, b.ID, models.StatusConfirmed, nil,
			map[string]interface{}{"status": models.StatusNoShow, "cancelled_at": now})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				continue
			}
			return marked, &DependencyError{Op: "markNoShows", Err: err}
		}

		marked++
		svc.record(ctx, "system", models.AuditBookingNoShow, updated.ID, nil)
		svc.notify(ctx, models.Notification{
			RecipientID:   updated.PatientID,
			RecipientRole: models.RolePatient,
			Type:          models.NotifyBookingCancelled,
			Title:         "Visit missed",
			Body:          fmt.Sprintf("Your caregiver did not start the visit scheduled for %s.", updated.ServiceDate),
			Data:          map[string]string{"booking_id": updated.ID},
		})
	}
	return marked, nil
}

func (svc *DefaultBookingService) scheduleReminders(ctx context.Context, b *models.Booking) {
	if svc.Scheduler == nil {
		return
	}
	scheduled, err := b.ScheduledStart(time.Local)
	if err != nil {
		return
	}
	now := svc.now()
	for _, lead := range []time.Duration{24 * time.Hour, time.Hour} {
		fireAt := scheduled.Add(-lead)
		if fireAt.Before(now) {
			continue
		}
		for _, r := range []struct{ id, role string }{
			{b.PatientID, models.RolePatient},
			{b.CaregiverID, models.RoleCaregiver},
		} {
			payload := tasks.ReminderPayload{BookingID: b.ID, RecipientID: r.id, RecipientRole: r.role}
			if err := svc.Scheduler.ScheduleVisitReminder(ctx, payload, fireAt); err != nil {
				svc.Logger.Warn("failed to schedule reminder",
					zap.String("booking_id", b.ID), zap.Error(err))
			}
		}
	}
}

func (svc *DefaultBookingService) scheduleCheckins(ctx context.Context, b *models.Booking, started time.Time) {
	if svc.Scheduler == nil || svc.Policy.CheckinInterval <= 0 {
		return
	}
	visitEnd := started.Add(time.Duration(b.End-b.Start) * time.Minute)
	seq := 0
	for fireAt := started.Add(svc.Policy.CheckinInterval); fireAt.Before(visitEnd); fireAt = fireAt.Add(svc.Policy.CheckinInterval) {
		seq++
		payload := tasks.CheckinPayload{BookingID: b.ID, CaregiverID: b.CaregiverID, Seq: seq}
		if err := svc.Scheduler.ScheduleSafetyCheckin(ctx, payload, fireAt); err != nil {
			svc.Logger.Warn("failed to schedule safety check-in",
				zap.String("booking_id", b.ID), zap.Error(err))
		}
	}
}
