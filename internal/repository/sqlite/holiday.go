package sqlite

import (
	"context"
	"fmt"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
)

type holidayRepository struct {
	db *DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *DB) holiday.Repository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, name FROM holidays`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var date, name string
		if err := rows.Scan(&date, &name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		out[date] = name
	}
	return out, rows.Err()
}

func (r *holidayRepository) Upsert(ctx context.Context, date, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO holidays (date, name) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET name = excluded.name`,
		date, name)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
