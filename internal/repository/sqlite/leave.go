package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

type leaveTypeRepository struct {
	db *DB
}

// NewLeaveTypeRepository creates a new leave type repository
func NewLeaveTypeRepository(db *DB) leave.TypeRepository {
	return &leaveTypeRepository{db: db}
}

func (r *leaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, applicable_to, default_quota, display_order, is_active
		 FROM leave_types ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveType
	for rows.Next() {
		var t leave.LeaveType
		var active int
		if err := rows.Scan(&t.ID, &t.Label, &t.ApplicableTo, &t.DefaultQuota, &t.Order, &active); err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		t.IsActive = active != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *leaveTypeRepository) ReplaceAll(ctx context.Context, types []leave.LeaveType) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leave_types`); err != nil {
		return fmt.Errorf("failed to clear leave types: %w", err)
	}
	for _, t := range types {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO leave_types (id, label, applicable_to, default_quota, display_order, is_active)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Label, string(t.ApplicableTo), t.DefaultQuota, t.Order, boolToInt(t.IsActive))
		if err != nil {
			return fmt.Errorf("failed to insert leave type %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

type leaveRequestRepository struct {
	db *DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `id, employee_id, employee_name, type, start_date, end_date, reason, status, submitted_at, reviewed_at, manager_comment`

func scanLeaveRequest(row interface{ Scan(...any) error }) (leave.LeaveRequest, error) {
	var r leave.LeaveRequest
	var startDate, endDate, submittedAt string
	var reviewedAt *string
	err := row.Scan(
		&r.ID,
		&r.EmployeeID,
		&r.EmployeeName,
		&r.TypeID,
		&startDate,
		&endDate,
		&r.Reason,
		&r.Status,
		&submittedAt,
		&reviewedAt,
		&r.ManagerComment,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	r.StartDate = parseDate(startDate)
	r.EndDate = parseDate(endDate)
	r.SubmittedAt = parseTime(submittedAt)
	if reviewedAt != nil {
		t := parseTime(*reviewedAt)
		r.ReviewedAt = &t
	}
	return r, nil
}

func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE employee_id = ? ORDER BY submitted_at DESC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var out []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = ?`, id)
	req, err := scanLeaveRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leave_requests (id, employee_id, employee_name, type, start_date, end_date, reason, status, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID,
		req.EmployeeID,
		req.EmployeeName,
		req.TypeID,
		formatDate(req.StartDate),
		formatDate(req.EndDate),
		req.Reason,
		string(req.Status),
		formatTime(req.SubmittedAt),
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reviewedAt time.Time, comment *string) (leave.LeaveRequest, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE leave_requests SET status = ?, reviewed_at = ?, manager_comment = ? WHERE id = ?`,
		string(status), formatTime(reviewedAt), comment, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return leave.LeaveRequest{}, leave.ErrRequestNotFound
	}
	return r.GetByID(ctx, id)
}
