package store

import (
	"context"
	"fmt"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
)

// Mutations write to the backend first and then replace the affected
// snapshot from a fresh read. The local cache is never patched optimistically
// for employees, types or requests; only holiday edits merge locally, with a
// rollback when the backend write fails.

func (s *Store) refreshEmployees(ctx context.Context) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Warn("employee snapshot refresh failed", "error", err)
		return
	}
	s.mu.Lock()
	s.empSnap = canonicalEmployees(emps)
	s.empLoaded = true
	s.mu.Unlock()
}

func (s *Store) refreshLeaveTypes(ctx context.Context) {
	types, err := s.leaveTypes.List(ctx)
	if err != nil {
		s.logger.Warn("leave type snapshot refresh failed", "error", err)
		return
	}
	s.mu.Lock()
	s.typeSnap = leave.NormalizeTypeList(types)
	s.typeLoaded = true
	s.mu.Unlock()
}

func (s *Store) refreshRequests(ctx context.Context) {
	reqs, err := s.requests.List(ctx)
	if err != nil {
		s.logger.Warn("request snapshot refresh failed", "error", err)
		return
	}
	s.mu.Lock()
	s.reqSnap = canonicalRequests(reqs)
	s.reqLoaded = true
	s.mu.Unlock()
}

func (s *Store) CreateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = identifier.Canonical(emp.ID)
	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}
	s.refreshEmployees(ctx)
	created.ID = identifier.Canonical(created.ID)
	return created, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = identifier.Canonical(emp.ID)
	updated, err := s.employees.Update(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}
	s.refreshEmployees(ctx)
	updated.ID = identifier.Canonical(updated.ID)
	return updated, nil
}

func (s *Store) UpdateEmployeeQuotas(ctx context.Context, id string, quotas map[string]float64) error {
	id = identifier.Canonical(id)
	if err := s.employees.UpdateQuotas(ctx, id, quotas); err != nil {
		return err
	}
	s.refreshEmployees(ctx)
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	id = identifier.Canonical(id)
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshEmployees(ctx)
	return nil
}

// ReplaceLeaveTypes writes the full normalized catalogue and reconciles the
// snapshot.
func (s *Store) ReplaceLeaveTypes(ctx context.Context, types []leave.LeaveType) ([]leave.LeaveType, error) {
	types = leave.NormalizeTypeList(types)
	if err := s.leaveTypes.ReplaceAll(ctx, types); err != nil {
		return nil, err
	}
	s.refreshLeaveTypes(ctx)
	return s.LeaveTypes(), nil
}

func (s *Store) CreateRequest(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.EmployeeID = identifier.Canonical(req.EmployeeID)
	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	s.refreshRequests(ctx)
	created.EmployeeID = identifier.Canonical(created.EmployeeID)
	return created, nil
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id string, status leave.RequestStatus, reviewedAt time.Time, comment *string) (leave.LeaveRequest, error) {
	updated, err := s.requests.UpdateStatus(ctx, id, status, reviewedAt, comment)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	s.refreshRequests(ctx)
	updated.EmployeeID = identifier.Canonical(updated.EmployeeID)
	return updated, nil
}

// UpsertHoliday applies the edit to the snapshot immediately, then writes
// through; a failed write restores the previous snapshot.
func (s *Store) UpsertHoliday(ctx context.Context, date, name string) error {
	s.mu.Lock()
	previous := s.holSnap
	merged := make(map[string]string, len(previous)+1)
	for k, v := range previous {
		merged[k] = v
	}
	merged[date] = name
	s.holSnap = merged
	s.mu.Unlock()

	if err := s.holidays.Upsert(ctx, date, name); err != nil {
		s.mu.Lock()
		s.holSnap = previous
		s.mu.Unlock()
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

// DeleteHoliday removes the date optimistically with the same rollback.
func (s *Store) DeleteHoliday(ctx context.Context, date string) error {
	s.mu.Lock()
	previous := s.holSnap
	merged := make(map[string]string, len(previous))
	for k, v := range previous {
		if k != date {
			merged[k] = v
		}
	}
	s.holSnap = merged
	s.mu.Unlock()

	if err := s.holidays.Delete(ctx, date); err != nil {
		s.mu.Lock()
		s.holSnap = previous
		s.mu.Unlock()
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// UpsertAttendance writes the punch through and refreshes the employee's
// attendance cache.
func (s *Store) UpsertAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.EmployeeID = identifier.Canonical(rec.EmployeeID)
	stored, err := s.attendance.Upsert(ctx, rec)
	if err != nil {
		return attendance.Record{}, err
	}
	if _, err := s.RefreshAttendanceFor(ctx, rec.EmployeeID); err != nil {
		s.logger.Warn("attendance cache refresh failed", "employee_id", rec.EmployeeID, "error", err)
	}
	stored.EmployeeID = identifier.Canonical(stored.EmployeeID)
	return stored, nil
}

func (s *Store) MarkAttendancePenalty(ctx context.Context, id, employeeID string) error {
	if err := s.attendance.MarkPenaltyApplied(ctx, id); err != nil {
		return err
	}
	if _, err := s.RefreshAttendanceFor(ctx, employeeID); err != nil {
		s.logger.Warn("attendance cache refresh failed", "employee_id", employeeID, "error", err)
	}
	return nil
}

func (s *Store) CreateNotification(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	n.EmployeeID = identifier.Canonical(n.EmployeeID)
	created, err := s.notifications.Create(ctx, n)
	if err != nil {
		return notification.Notification{}, err
	}
	if _, err := s.RefreshNotificationsFor(ctx, n.EmployeeID); err != nil {
		s.logger.Warn("notification cache refresh failed", "employee_id", n.EmployeeID, "error", err)
	}
	return created, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id, employeeID string) error {
	employeeID = identifier.Canonical(employeeID)
	if err := s.notifications.MarkRead(ctx, id, employeeID); err != nil {
		return err
	}
	if employeeID != "" {
		if _, err := s.RefreshNotificationsFor(ctx, employeeID); err != nil {
			s.logger.Warn("notification cache refresh failed", "employee_id", employeeID, "error", err)
		}
	}
	return nil
}
