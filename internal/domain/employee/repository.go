package employee

import "context"

// Repository is the storage-backend contract for the employee roster.
// Implemented by repository/postgresql (remote mode) and repository/sqlite
// (embedded mode).
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	// UpdateQuotas replaces the quota map only; used by the attendance
	// penalty path so a concurrent profile edit is not clobbered.
	UpdateQuotas(ctx context.Context, id string, quotas map[string]float64) error
	Delete(ctx context.Context, id string) error
}
