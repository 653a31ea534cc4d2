package tasks

import (
	"encoding/json"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentNotify = "notify:appointment"

// NewAppointmentNotifyTask builds the queue task for a committed appointment.
// MaxRetry(0) keeps the at-most-one-attempt delivery contract.
func NewAppointmentNotifyTask(appt models.Appointment) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(appt)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}

// Dispatcher enqueues notification tasks for the async worker.
type Dispatcher struct {
	Client *asynq.Client
}

func NewDispatcher(redisOpt asynq.RedisClientOpt) *Dispatcher {
	return &Dispatcher{Client: asynq.NewClient(redisOpt)}
}

// DispatchAppointmentNotification hands the appointment off to the queue.
func (d *Dispatcher) DispatchAppointmentNotification(appt models.Appointment) error {
	task, opts, err := NewAppointmentNotifyTask(appt)
	if err != nil {
		return err
	}
	_, err = d.Client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (d *Dispatcher) Close() error {
	return d.Client.Close()
}
