package postgresql

import (
	"context"
	"fmt"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) GetAll(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date, name FROM holidays`)
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
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name) VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
	`
	if _, err := q.Exec(ctx, query, date, name); err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
