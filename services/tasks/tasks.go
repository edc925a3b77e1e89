package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task types handled by the background worker.
const (
	TypeVisitReminder = "visit:reminder"
	TypeSafetyCheckin = "visit:checkin"
	TypeNoShowSweep   = "visit:noshow"
)

// ReminderPayload announces an upcoming visit to one party.
type ReminderPayload struct {
	BookingID     string `json:"booking_id"`
	RecipientID   string `json:"recipient_id"`
	RecipientRole string `json:"recipient_role"`
}

// CheckinPayload drives one periodic safety check-in during a visit.
type CheckinPayload struct {
	BookingID   string `json:"booking_id"`
	CaregiverID string `json:"caregiver_id"`
	Seq         int    `json:"seq"`
}

func NewVisitReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeVisitReminder, b), []asynq.Option{asynq.ProcessAt(fireAt)}, nil
}

func NewSafetyCheckinTask(payload CheckinPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeSafetyCheckin, b), []asynq.Option{asynq.ProcessAt(fireAt)}, nil
}

func NewNoShowSweepTask() *asynq.Task {
	return asynq.NewTask(TypeNoShowSweep, nil)
}
