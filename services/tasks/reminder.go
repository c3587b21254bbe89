package tasks

import (
	"encoding/json"
	"time"

	"servicehub/config"
	"servicehub/models"

	"github.com/hibiken/asynq"
)

const TypeServiceReminder = "reminder:service"

// reminderLead is how long before the scheduled service the reminder fires.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeServiceReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(payload.ScheduleTime.Add(-reminderLead))}

	return task, opts, nil
}

// Scheduler enqueues service reminders on the Redis-backed task queue.
type Scheduler struct {
	Client *asynq.Client
}

// NewScheduler builds a Scheduler from the loaded application config.
func NewScheduler() *Scheduler {
	return &Scheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder task timed one hour before the booked
// service. Bookings already inside the lead window fire immediately.
func (s *Scheduler) ScheduleReminder(payload models.ReminderPayload) error {
	task, opts, err := NewReminderTask(payload)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
