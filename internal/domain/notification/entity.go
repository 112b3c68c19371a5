package notification

import "time"

const (
	maxTitleLength   = 500
	maxMessageLength = 2000
)

type Notification struct {
	ID         string
	EmployeeID string
	Title      string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
