package notification

import "context"

// Repository is the storage-backend contract for notifications.
type Repository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
	Create(ctx context.Context, n Notification) (Notification, error)
	// MarkRead scopes by employee id when one is given, so an employee
	// cannot mark another employee's notification.
	MarkRead(ctx context.Context, id string, employeeID string) error
}
