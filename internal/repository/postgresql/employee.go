package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, role, gender, department, join_date, manager_id, quotas, password_hash, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var quotasJSON []byte
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Gender,
		&e.Department,
		&e.JoinDate,
		&e.ManagerID,
		&quotasJSON,
		&e.PasswordHash,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if len(quotasJSON) > 0 {
		if err := json.Unmarshal(quotasJSON, &e.Quotas); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to unmarshal quotas: %w", err)
		}
	}
	if e.Quotas == nil {
		e.Quotas = map[string]float64{}
	}
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := q.Query(ctx, query)
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
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`
	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	quotasJSON, err := json.Marshal(emp.Quotas)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal quotas: %w", err)
	}

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (id, name, email, role, gender, department, join_date, manager_id, quotas, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		string(emp.Gender),
		emp.Department,
		emp.JoinDate,
		emp.ManagerID,
		quotasJSON,
		emp.PasswordHash,
		emp.CreatedAt,
		emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	quotasJSON, err := json.Marshal(emp.Quotas)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to marshal quotas: %w", err)
	}

	emp.UpdatedAt = time.Now()

	query := `
		UPDATE employees
		SET name = $2, email = $3, role = $4, gender = $5, department = $6,
		    join_date = $7, manager_id = $8, quotas = $9, password_hash = $10, updated_at = $11
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		string(emp.Role),
		string(emp.Gender),
		emp.Department,
		emp.JoinDate,
		emp.ManagerID,
		quotasJSON,
		emp.PasswordHash,
		emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) UpdateQuotas(ctx context.Context, id string, quotas map[string]float64) error {
	q := GetQuerier(ctx, r.db)

	quotasJSON, err := json.Marshal(quotas)
	if err != nil {
		return fmt.Errorf("failed to marshal quotas: %w", err)
	}

	query := `UPDATE employees SET quotas = $2, updated_at = $3 WHERE id = $1`
	tag, err := q.Exec(ctx, query, id, quotasJSON, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update quotas: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
