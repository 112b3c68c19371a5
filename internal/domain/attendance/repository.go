package attendance

import (
	"context"
	"time"
)

// Repository is the storage-backend contract for attendance records.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)
	// Upsert merges check-in/check-out into the (employee, date) row,
	// keeping existing non-nil times, and returns the stored record.
	Upsert(ctx context.Context, rec Record) (Record, error)
	// MarkPenaltyApplied flags the record so a late check-in deducts
	// vacation quota at most once.
	MarkPenaltyApplied(ctx context.Context, id string) error
}
