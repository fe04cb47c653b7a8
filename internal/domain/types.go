package domain

type (
	ThreadId  = string
	CommentId = string
	UserId    = string
	Tag       = string

	Email    = string
	Password = string
)

// Severity levels for notifications.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)
