package tasks

import (
	"encoding/json"
	"time"

	"booktrack/models"

	"github.com/hibiken/asynq"
)

const TypeBookingRemind = "booking:remind"

// Reminders fire this long before the scheduled slot.
const reminderLead = time.Hour

// Scheduler enqueues booking reminder tasks on the asynq queue.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a Scheduler backed by the given Redis connection.
func NewScheduler(redisOpt asynq.RedisClientOpt) *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpt)}
}

// Schedule enqueues a reminder at one hour before the booking's slot.
// Bookings whose slot cannot be parsed or is already too close are skipped.
func (s *Scheduler) Schedule(b *models.Booking) error {
	fireAt, ok := reminderTime(b.Date, b.Time)
	if !ok {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		Date:      b.Date,
		Time:      b.Time,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeBookingRemind, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// Close releases the underlying queue connection.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

func reminderTime(date, clock string) (time.Time, bool) {
	slot, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	fireAt := slot.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}
