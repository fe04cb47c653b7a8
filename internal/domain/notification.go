package domain

import "time"

// Notification is ephemeral user-facing feedback. It is never persisted
// beyond the in-memory queue and is cleared by explicit user action.
type Notification struct {
	Id        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // success, error, info, warning
	Timestamp time.Time `json:"timestamp"`
}
