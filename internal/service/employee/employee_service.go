package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type EmployeeService struct {
	store *store.Store
}

func NewEmployeeService(st *store.Store) *EmployeeService {
	return &EmployeeService{store: st}
}

func (s *EmployeeService) List(ctx context.Context) ([]employee.Employee, error) {
	emps := s.store.Employees()
	if len(emps) > 0 {
		return emps, nil
	}
	// Cold start before the first LoadAll.
	if err := s.store.LoadAll(ctx); err != nil {
		return nil, err
	}
	return s.store.Employees(), nil
}

// Create adds a roster entry. The id continues the zero-padded numeric
// sequence; quotas default from the active leave types applicable to the
// employee's gender when none are given.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emps, err := s.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	ids := make([]string, 0, len(emps))
	for _, e := range emps {
		ids = append(ids, e.ID)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	quotas := req.Quotas
	if len(quotas) == 0 {
		quotas = leave.QuotasForGender(s.store.LeaveTypes(), employee.Gender(req.Gender))
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	var managerID *string
	if req.ManagerID != nil && *req.ManagerID != "" {
		mid := identifier.Canonical(*req.ManagerID)
		managerID = &mid
	}

	created, err := s.store.CreateEmployee(ctx, employee.Employee{
		ID:           identifier.Next(ids),
		Name:         req.Name,
		Email:        req.Email,
		Role:         employee.Role(req.Role),
		Gender:       employee.Gender(req.Gender),
		Department:   req.Department,
		JoinDate:     joinDate,
		ManagerID:    managerID,
		Quotas:       quotas,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update applies a partial edit. A nil field keeps the stored value; a
// present Quotas map replaces the whole quota map.
func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.store.EmployeeByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = hash
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.JoinDate != nil {
		joinDate, _ := validator.IsValidDate(*req.JoinDate)
		emp.JoinDate = joinDate
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			emp.ManagerID = nil
		} else {
			mid := identifier.Canonical(*req.ManagerID)
			emp.ManagerID = &mid
		}
	}
	if req.Quotas != nil {
		emp.Quotas = req.Quotas
	}

	updated, err := s.store.UpdateEmployee(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

// Delete removes the employee from the active roster. Historic requests
// keep their stored name and id. The last remaining employee cannot be
// removed.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	emps, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(emps) <= 1 {
		return employee.ErrLastEmployee
	}
	return s.store.DeleteEmployee(ctx, identifier.Canonical(id))
}
