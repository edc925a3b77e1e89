package models

import "time"

// Booking represents a scheduled care visit between one patient and one
// caregiver. Start and End are minutes from midnight on ServiceDate.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	PatientID   string `bson:"patient_id" json:"patient_id"`
	CaregiverID string `bson:"caregiver_id" json:"caregiver_id"`

	ServiceDate    string `bson:"service_date" json:"service_date"` // "YYYY-MM-DD"
	Start          int    `bson:"start" json:"start"`
	End            int    `bson:"end" json:"end"`
	RecurrenceRule string `bson:"recurrence_rule,omitempty" json:"recurrence_rule,omitempty"`

	HourlyRate      float64 `bson:"hourly_rate" json:"hourly_rate"`
	DurationHours   float64 `bson:"duration_hours" json:"duration_hours"`
	TotalCost       float64 `bson:"total_cost" json:"total_cost"`
	CancellationFee float64 `bson:"cancellation_fee" json:"cancellation_fee"`

	Status string `bson:"status" json:"status"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	ConfirmedAt *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`

	CancelReason string `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`
	CancelledBy  string `bson:"cancelled_by,omitempty" json:"cancelled_by,omitempty"`

	Location   Location  `bson:"location" json:"location"`
	CareNeeds  []string  `bson:"care_needs,omitempty" json:"care_needs,omitempty"`
	StartProof *GeoPoint `bson:"start_proof,omitempty" json:"start_proof,omitempty"`

	CompletionNotes string `bson:"completion_notes,omitempty" json:"completion_notes,omitempty"`
}

// ScheduledStart resolves ServiceDate+Start into a wall-clock time in loc.
func (b *Booking) ScheduledStart(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", b.ServiceDate, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(b.Start) * time.Minute), nil
}

// IsTerminal reports whether the booking is in a terminal state.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// BookingRequestInput is the payload for creating a booking request.
type BookingRequestInput struct {
	CaregiverID    string   `json:"caregiver_id"`
	ServiceDate    string   `json:"service_date"`
	Start          int      `json:"start"`
	End            int      `json:"end"`
	RecurrenceRule string   `json:"recurrence_rule,omitempty"`
	Location       Location `json:"location"`
	CareNeeds      []string `json:"care_needs,omitempty"`
}
