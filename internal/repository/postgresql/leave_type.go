package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type leaveTypeRepository struct {
	db *database.DB
}

// NewLeaveTypeRepository creates a new leave type repository
func NewLeaveTypeRepository(db *database.DB) leave.TypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, applicable_to, default_quota, display_order, is_active
		FROM leave_types
		ORDER BY display_order
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveType
	for rows.Next() {
		var t leave.LeaveType
		if err := rows.Scan(&t.ID, &t.Label, &t.ApplicableTo, &t.DefaultQuota, &t.Order, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the whole catalogue in one transaction.
func (r *leaveTypeRepository) ReplaceAll(ctx context.Context, types []leave.LeaveType) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM leave_types`); err != nil {
			return fmt.Errorf("failed to clear leave types: %w", err)
		}
		query := `
			INSERT INTO leave_types (id, label, applicable_to, default_quota, display_order, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		for _, t := range types {
			if _, err := tx.Exec(ctx, query, t.ID, t.Label, string(t.ApplicableTo), t.DefaultQuota, t.Order, t.IsActive); err != nil {
				return fmt.Errorf("failed to insert leave type %s: %w", t.ID, err)
			}
		}
		return nil
	})
}
