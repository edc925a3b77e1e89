package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carelink/config"
	"carelink/models"
	"carelink/services/booking"
	"carelink/services/notification"
	"carelink/services/tasks"

	"github.com/hibiken/asynq"
)

// RedisTaskOpt returns the asynq broker connection options.
func RedisTaskOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// InitVisitWorker runs the async worker in background. It delivers visit
// reminders and safety check-ins and periodically sweeps lapsed confirmed
// bookings into no_show.
func InitVisitWorker(bookingSvc booking.BookingService, notifier notification.Dispatcher) {
	redisOpts := RedisTaskOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVisitReminder, handleReminderTask(notifier))
	mux.HandleFunc(tasks.TypeSafetyCheckin, handleCheckinTask(notifier))
	mux.HandleFunc(tasks.TypeNoShowSweep, handleNoShowTask(bookingSvc))

	go func() {
		log.Println("[VisitWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[VisitWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[VisitWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	startNoShowScheduler(redisOpts)
}

// startNoShowScheduler enqueues the no-show sweep on a fixed cadence.
func startNoShowScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every 10m", tasks.NewNoShowSweepTask()); err != nil {
		log.Printf("[VisitWorker] failed to register no-show sweep: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[VisitWorker] no-show scheduler stopped: %v", err)
		}
	}()
}

func handleReminderTask(notifier notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return notifier.Dispatch(ctx, models.Notification{
			RecipientID:   payload.RecipientID,
			RecipientRole: payload.RecipientRole,
			Type:          models.NotifyVisitReminder,
			Title:         "Upcoming visit",
			Body:          "You have a care visit coming up.",
			Data:          map[string]string{"booking_id": payload.BookingID},
		})
	}
}

func handleCheckinTask(notifier notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.CheckinPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		return notifier.Dispatch(ctx, models.Notification{
			RecipientID:   payload.CaregiverID,
			RecipientRole: models.RoleCaregiver,
			Type:          models.NotifySafetyCheckin,
			Title:         "Safety check-in",
			Body:          "Please confirm the visit is going well.",
			Data:          map[string]string{"booking_id": payload.BookingID},
		})
	}
}

func handleNoShowTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		marked, err := bookingSvc.MarkNoShows(ctx, time.Now())
		if err != nil {
			return err
		}
		if marked > 0 {
			log.Printf("[VisitWorker] marked %d booking(s) as no_show", marked)
		}
		return nil
	}
}
