package models

// Notification types emitted by the booking lifecycle.
const (
	NotifyBookingRequest   = "booking_request"
	NotifyBookingConfirmed = "booking_confirmed"
	NotifyBookingCancelled = "booking_cancelled"
	NotifyVisitReminder    = "visit_reminder"
	NotifySafetyCheckin    = "safety_checkin"
	NotifyReviewRequest    = "review_request"
)

// Notification is the payload handed to the dispatcher.
type Notification struct {
	RecipientID   string            `json:"recipient_id"`
	RecipientRole string            `json:"recipient_role"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Body          string            `json:"body"`
	Data          map[string]string `json:"data,omitempty"`
}
