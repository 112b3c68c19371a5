package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	db *DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, role, gender, department, join_date, manager_id, quotas, password_hash, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var e employee.Employee
	var joinDate, createdAt, updatedAt, quotasJSON string
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Gender,
		&e.Department,
		&joinDate,
		&e.ManagerID,
		&quotasJSON,
		&e.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.JoinDate = parseDate(joinDate)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	if err := json.Unmarshal([]byte(quotasJSON), &e.Quotas); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to unmarshal quotas: %w", err)
	}
	if e.Quotas == nil {
		e.Quotas = map[string]float64{}
	}
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = ? COLLATE NOCASE`, email)
	e, err := scanEmployee(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	quotasJSON, err := json.Marshal(emp.Quotas)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal quotas: %w", err)
	}

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		string(emp.Gender),
		emp.Department,
		formatDate(emp.JoinDate),
		emp.ManagerID,
		string(quotasJSON),
		emp.PasswordHash,
		formatTime(emp.CreatedAt),
		formatTime(emp.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	quotasJSON, err := json.Marshal(emp.Quotas)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal quotas: %w", err)
	}

	emp.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees
		 SET name = ?, email = ?, role = ?, gender = ?, department = ?,
		     join_date = ?, manager_id = ?, quotas = ?, password_hash = ?, updated_at = ?
		 WHERE id = ?`,
		emp.Name,
		emp.Email,
		string(emp.Role),
		string(emp.Gender),
		emp.Department,
		formatDate(emp.JoinDate),
		emp.ManagerID,
		string(quotasJSON),
		emp.PasswordHash,
		formatTime(emp.UpdatedAt),
		emp.ID,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) UpdateQuotas(ctx context.Context, id string, quotas map[string]float64) error {
	quotasJSON, err := json.Marshal(quotas)
	if err != nil {
		return fmt.Errorf("failed to marshal quotas: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET quotas = ?, updated_at = ? WHERE id = ?`,
		string(quotasJSON), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("failed to update quotas: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
