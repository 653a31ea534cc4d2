package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"salonbook/config"
	"salonbook/models"
	"salonbook/services/notification"
	"salonbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async notification worker in background.
// It drains the notify:appointment queue and delivers each payload at most
// once; a failed delivery is logged and dropped, never retried.
func InitNotificationWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentNotify, handleNotifyTask(notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var appt models.Appointment
		if err := json.Unmarshal(task.Payload(), &appt); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return nil
		}

		if err := notifSvc.SendAppointmentNotification(ctx, appt); err != nil {
			// Returning nil keeps the task from being retried; delivery is
			// at-most-once.
			log.Printf("[NotificationWorker] failed to send notification for appointment %s: %v", appt.ID, err)
		}
		return nil
	}
}
