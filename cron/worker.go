package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"salonflow/config"
	appointmentRepo "salonflow/database/repository/appointment"
	"salonflow/models"
	"salonflow/services/notification"
	"salonflow/services/tasks"

	"github.com/hibiken/asynq"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns the asynq client used to enqueue reminder tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, appts))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers a due reminder. Appointments that were
// cancelled or already reminded since the task was enqueued are skipped
// silently.
func handleReminderTask(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := appts.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] appointment %s gone, dropping reminder", p.AppointmentID)
			return nil
		}
		if !appt.Status.Blocking() || appt.ReminderSent {
			return nil
		}

		if err := notifSvc.SendReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", p.AppointmentID, err)
			return err
		}
		return appts.MarkReminderSent(ctx, p.AppointmentID)
	}
}
