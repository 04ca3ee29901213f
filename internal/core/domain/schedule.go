package domain

import "time"

// Schedule is a user reminder entry. NotifiedAt is set once the reminder
// worker has published a due event for it, so a schedule is announced at most
// once.
type Schedule struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ScheduledTime    time.Time  `json:"scheduled_time"`
	NotificationType string     `json:"notification_type"`
	IsCompleted      bool       `json:"is_completed"`
	NotifiedAt       *time.Time `json:"notified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Reminder is the event payload published when a schedule comes due.
type Reminder struct {
	ScheduleID       string    `json:"schedule_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ScheduledTime    time.Time `json:"scheduled_time"`
	NotificationType string    `json:"notification_type"`
}
