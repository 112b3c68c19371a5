package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	db *DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, check_in, check_out, status, penalty_applied, created_at`

func scanAttendance(row interface{ Scan(...any) error }) (attendance.Record, error) {
	var rec attendance.Record
	var date, createdAt string
	var penalty int
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.Status,
		&penalty,
		&createdAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.Date = parseDate(date)
	rec.PenaltyApplied = penalty != 0
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var out []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = ? ORDER BY date DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var out []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = ? AND date = ?`,
		employeeID, formatDate(date))
	rec, err := scanAttendance(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance (id, user_id, date, check_in, check_out, status, penalty_applied, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)
		 ON CONFLICT(user_id, date) DO UPDATE SET
			check_in = COALESCE(excluded.check_in, attendance.check_in),
			check_out = COALESCE(excluded.check_out, attendance.check_out)`,
		rec.ID,
		rec.EmployeeID,
		formatDate(rec.Date),
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		formatTime(rec.CreatedAt),
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return r.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
}

func (r *attendanceRepository) MarkPenaltyApplied(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE attendance SET penalty_applied = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark penalty applied: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
