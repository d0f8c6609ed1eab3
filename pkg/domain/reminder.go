package domain

import "time"

// Reminder is a scheduled one-shot notification. Reminders live in memory
// only and do not survive restarts.
type Reminder struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}
