package leave

import (
	"context"
	"time"
)

// TypeRepository is the storage-backend contract for the leave type
// catalogue. ReplaceAll persists the full normalized list in one shot; the
// catalogue is small and edited as a unit from the admin panel.
type TypeRepository interface {
	List(ctx context.Context) ([]LeaveType, error)
	ReplaceAll(ctx context.Context, types []LeaveType) error
}

// RequestRepository is the storage-backend contract for leave requests.
type RequestRepository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	// UpdateStatus stamps the review outcome. It must fail with
	// ErrRequestNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewedAt time.Time, comment *string) (LeaveRequest, error)
}
