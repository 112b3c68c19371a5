// Package store holds the in-memory snapshots of every entity collection,
// backed by the storage repositories. Reads serve the current snapshot;
// writes go through to the backend and then reconcile the snapshot from a
// fresh read, so the cache never drifts from the store of record.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
)

// ErrBackendUnreachable is returned by LoadAll when every collection fetch
// failed. Partial failures are logged but not returned; the surviving
// snapshots are still updated.
var ErrBackendUnreachable = errors.New("backend unreachable")

type Store struct {
	employees     employee.Repository
	leaveTypes    leave.TypeRepository
	requests      leave.RequestRepository
	holidays      holiday.Repository
	attendance    attendance.Repository
	notifications notification.Repository

	logger *slog.Logger

	mu           sync.RWMutex
	empSnap      []employee.Employee
	empLoaded    bool
	typeSnap     []leave.LeaveType
	typeLoaded   bool
	reqSnap      []leave.LeaveRequest
	reqLoaded    bool
	holSnap      map[string]string
	holLoaded    bool
	attByEmp     map[string][]attendance.Record
	notifByEmp   map[string][]notification.Notification
}

func New(
	employees employee.Repository,
	leaveTypes leave.TypeRepository,
	requests leave.RequestRepository,
	holidays holiday.Repository,
	att attendance.Repository,
	notifications notification.Repository,
	logger *slog.Logger,
) *Store {
	return &Store{
		employees:     employees,
		leaveTypes:    leaveTypes,
		requests:      requests,
		holidays:      holidays,
		attendance:    att,
		notifications: notifications,
		logger:        logger,
		attByEmp:      make(map[string][]attendance.Record),
		notifByEmp:    make(map[string][]notification.Notification),
	}
}

// LoadAll refreshes the employee, leave type, request and holiday snapshots
// concurrently. Each fetch is independent; a failing one leaves its current
// snapshot in place while the others still update. Only when every fetch
// fails does LoadAll report the backend as unreachable.
func (s *Store) LoadAll(ctx context.Context) error {
	var wg sync.WaitGroup
	var empErr, typeErr, reqErr, holErr error

	var emps []employee.Employee
	var types []leave.LeaveType
	var reqs []leave.LeaveRequest
	var hols map[string]string

	wg.Add(4)
	go func() {
		defer wg.Done()
		emps, empErr = s.employees.List(ctx)
	}()
	go func() {
		defer wg.Done()
		types, typeErr = s.leaveTypes.List(ctx)
	}()
	go func() {
		defer wg.Done()
		reqs, reqErr = s.requests.List(ctx)
	}()
	go func() {
		defer wg.Done()
		hols, holErr = s.holidays.GetAll(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	if empErr == nil {
		s.empSnap = canonicalEmployees(emps)
		s.empLoaded = true
	}
	if typeErr == nil {
		s.typeSnap = leave.NormalizeTypeList(types)
		s.typeLoaded = true
	}
	if reqErr == nil {
		s.reqSnap = canonicalRequests(reqs)
		s.reqLoaded = true
	}
	if holErr == nil {
		s.holSnap = hols
		s.holLoaded = true
	}
	s.mu.Unlock()

	for _, e := range []struct {
		name string
		err  error
	}{
		{"employees", empErr},
		{"leave_types", typeErr},
		{"leave_requests", reqErr},
		{"holidays", holErr},
	} {
		if e.err != nil {
			s.logger.Warn("snapshot refresh failed", "collection", e.name, "error", e.err)
		}
	}

	if empErr != nil && typeErr != nil && reqErr != nil && holErr != nil {
		return fmt.Errorf("%w: %w", ErrBackendUnreachable, errors.Join(empErr, typeErr, reqErr, holErr))
	}
	return nil
}

// StartAutoRefresh re-runs LoadAll every interval until the context is
// canceled.
func (s *Store) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.LoadAll(ctx); err != nil {
					s.logger.Warn("periodic refresh failed", "error", err)
				}
			}
		}
	}()
}

// Employees returns a copy of the roster snapshot.
func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]employee.Employee(nil), s.empSnap...)
}

// EmployeeByID looks the canonical id up in the snapshot, falling back to
// the backend when the snapshot has never been loaded.
func (s *Store) EmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	id = identifier.Canonical(id)

	s.mu.RLock()
	loaded := s.empLoaded
	for _, e := range s.empSnap {
		if e.ID == id {
			s.mu.RUnlock()
			return e, nil
		}
	}
	s.mu.RUnlock()

	if loaded {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.ID = identifier.Canonical(emp.ID)
	return emp, nil
}

// RequestByID looks the request up in the snapshot, falling back to the
// backend when the snapshot has never been loaded.
func (s *Store) RequestByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	s.mu.RLock()
	loaded := s.reqLoaded
	for _, r := range s.reqSnap {
		if r.ID == id {
			s.mu.RUnlock()
			return r, nil
		}
	}
	s.mu.RUnlock()

	if loaded {
		return leave.LeaveRequest{}, leave.ErrRequestNotFound
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.EmployeeID = identifier.Canonical(req.EmployeeID)
	return req, nil
}

// LeaveTypes returns a copy of the leave type snapshot.
func (s *Store) LeaveTypes() []leave.LeaveType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]leave.LeaveType(nil), s.typeSnap...)
}

// Requests returns a copy of the leave request snapshot.
func (s *Store) Requests() []leave.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]leave.LeaveRequest(nil), s.reqSnap...)
}

// RequestsByEmployee filters the request snapshot by canonical employee id.
func (s *Store) RequestsByEmployee(employeeID string) []leave.LeaveRequest {
	employeeID = identifier.Canonical(employeeID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]leave.LeaveRequest, 0)
	for _, r := range s.reqSnap {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// Holidays returns a copy of the holiday snapshot.
func (s *Store) Holidays() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.holSnap))
	for k, v := range s.holSnap {
		out[k] = v
	}
	return out
}

// AttendanceAll lists every attendance record straight from the backend;
// the admin view is the only caller and it is not cached per employee.
func (s *Store) AttendanceAll(ctx context.Context) ([]attendance.Record, error) {
	recs, err := s.attendance.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	for i := range recs {
		recs[i].EmployeeID = identifier.Canonical(recs[i].EmployeeID)
	}
	return recs, nil
}

// AttendanceFor returns the employee's attendance records, fetching lazily
// on first access and serving the cached copy afterwards.
func (s *Store) AttendanceFor(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	employeeID = identifier.Canonical(employeeID)

	s.mu.RLock()
	cached, ok := s.attByEmp[employeeID]
	s.mu.RUnlock()
	if ok {
		return append([]attendance.Record(nil), cached...), nil
	}
	return s.RefreshAttendanceFor(ctx, employeeID)
}

// RefreshAttendanceFor reloads one employee's attendance cache.
func (s *Store) RefreshAttendanceFor(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	employeeID = identifier.Canonical(employeeID)

	recs, err := s.attendance.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	for i := range recs {
		recs[i].EmployeeID = identifier.Canonical(recs[i].EmployeeID)
	}

	s.mu.Lock()
	s.attByEmp[employeeID] = recs
	s.mu.Unlock()
	return append([]attendance.Record(nil), recs...), nil
}

// NotificationsFor returns the employee's notifications, fetched lazily.
func (s *Store) NotificationsFor(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	employeeID = identifier.Canonical(employeeID)

	s.mu.RLock()
	cached, ok := s.notifByEmp[employeeID]
	s.mu.RUnlock()
	if ok {
		return append([]notification.Notification(nil), cached...), nil
	}
	return s.RefreshNotificationsFor(ctx, employeeID)
}

// RefreshNotificationsFor reloads one employee's notification cache.
func (s *Store) RefreshNotificationsFor(ctx context.Context, employeeID string) ([]notification.Notification, error) {
	employeeID = identifier.Canonical(employeeID)

	list, err := s.notifications.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	s.mu.Lock()
	s.notifByEmp[employeeID] = list
	s.mu.Unlock()
	return append([]notification.Notification(nil), list...), nil
}

func canonicalEmployees(emps []employee.Employee) []employee.Employee {
	for i := range emps {
		emps[i].ID = identifier.Canonical(emps[i].ID)
		if emps[i].ManagerID != nil {
			mid := identifier.Canonical(*emps[i].ManagerID)
			emps[i].ManagerID = &mid
		}
	}
	return emps
}

func canonicalRequests(reqs []leave.LeaveRequest) []leave.LeaveRequest {
	for i := range reqs {
		reqs[i].EmployeeID = identifier.Canonical(reqs[i].EmployeeID)
	}
	return reqs
}
