package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Scheduler enqueues lifecycle follow-up work. The booking engine depends on
// this interface so tests can run without a broker.
type Scheduler interface {
	ScheduleVisitReminder(ctx context.Context, payload ReminderPayload, fireAt time.Time) error
	ScheduleSafetyCheckin(ctx context.Context, payload CheckinPayload, fireAt time.Time) error
}

// AsynqScheduler is the production Scheduler backed by an asynq client.
type AsynqScheduler struct {
	Client *asynq.Client
}

func NewAsynqScheduler(client *asynq.Client) *AsynqScheduler {
	return &AsynqScheduler{Client: client}
}

func (s *AsynqScheduler) ScheduleVisitReminder(ctx context.Context, payload ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewVisitReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("scheduler: failed to enqueue reminder: %w", err)
	}
	return nil
}

func (s *AsynqScheduler) ScheduleSafetyCheckin(ctx context.Context, payload CheckinPayload, fireAt time.Time) error {
	task, opts, err := NewSafetyCheckinTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("scheduler: failed to enqueue check-in: %w", err)
	}
	return nil
}
