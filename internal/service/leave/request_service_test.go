package leave_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	leaveService "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
	notificationService "github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.Seed(ctx))

	st := store.New(
		sqlite.NewEmployeeRepository(db),
		sqlite.NewLeaveTypeRepository(db),
		sqlite.NewLeaveRequestRepository(db),
		sqlite.NewHolidayRepository(db),
		sqlite.NewAttendanceRepository(db),
		sqlite.NewNotificationRepository(db),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, st.LoadAll(ctx))
	return st
}

func newRequestService(t *testing.T, st *store.Store) *leaveService.RequestService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notificationService.NewNotificationService(st, logger)
	return leaveService.NewRequestService(st, notifier, logger)
}

func seedEmployee(t *testing.T, st *store.Store, emp employee.Employee) employee.Employee {
	t.Helper()
	if emp.Role == "" {
		emp.Role = employee.RoleEmployee
	}
	if emp.Gender == "" {
		emp.Gender = employee.Male
	}
	if emp.JoinDate.IsZero() {
		emp.JoinDate = date("2020-01-15")
	}
	created, err := st.CreateEmployee(context.Background(), emp)
	require.NoError(t, err)
	return created
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("files a pending request and notifies the manager", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{ID: "001", Name: "Manager", Role: employee.RoleManager})
		seedEmployee(t, st, employee.Employee{ID: "002", Name: "Somchai", ManagerID: strPtr("001")})

		created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID:   "2",
			EmployeeName: "Somchai",
			Type:         "personal",
			StartDate:    "2026-02-02",
			EndDate:      "2026-02-03",
			Reason:       "ธุระส่วนตัว",
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(created.ID, "LR"))
		assert.Equal(t, "002", created.EmployeeID)
		assert.Equal(t, leave.TypePersonal, created.TypeID)
		assert.Equal(t, leave.StatusPending, created.Status)

		notifications, err := st.NotificationsFor(ctx, "001")
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "คำขอลาใหม่จากพนักงาน", notifications[0].Title)
	})

	t.Run("rejects overlap with an open request", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{ID: "001", Name: "Somchai"})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "PERSONAL",
			StartDate: "2026-02-02", EndDate: "2026-02-04",
		})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "VACATION",
			StartDate: "2026-02-04", EndDate: "2026-02-06",
		})
		assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

		// Nothing new was persisted
		assert.Len(t, st.RequestsByEmployee("001"), 1)
	})

	t.Run("sick leave must be retroactive", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{ID: "001", Name: "Somchai"})

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "SICK",
			StartDate: tomorrow, EndDate: tomorrow,
		})
		assert.ErrorIs(t, err, leave.ErrSickLeaveInFuture)
	})

	t.Run("bounded quota blocks over-filing", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{
			ID: "001", Name: "Somchai",
			Quotas: map[string]float64{leave.TypePersonal: 3},
		})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "PERSONAL",
			StartDate: "2026-02-02", EndDate: "2026-02-03",
		})
		require.NoError(t, err)

		// 2 used + 2 requested > 3
		_, err = svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "PERSONAL",
			StartDate: "2026-02-09", EndDate: "2026-02-10",
		})
		assert.ErrorIs(t, err, leave.ErrQuotaExceeded)
	})

	t.Run("vacation over-filing is allowed at submission", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{
			ID: "001", Name: "Somchai",
			Quotas: map[string]float64{leave.TypeVacation: 1},
		})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "VACATION",
			StartDate: "2026-02-02", EndDate: "2026-02-06",
		})
		assert.NoError(t, err)
	})

	t.Run("gender-inapplicable type is refused", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		seedEmployee(t, st, employee.Employee{ID: "001", Name: "Somchai", Gender: employee.Male})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "001", EmployeeName: "Somchai", Type: "MATERNITY",
			StartDate: "2026-02-02", EndDate: "2026-02-06",
		})
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveType)
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, st *store.Store, svc *leaveService.RequestService) leave.LeaveRequest {
		seedEmployee(t, st, employee.Employee{ID: "001", Name: "Manager", Role: employee.RoleManager})
		seedEmployee(t, st, employee.Employee{ID: "002", Name: "Somchai", ManagerID: strPtr("001")})
		created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "002", EmployeeName: "Somchai", Type: "PERSONAL",
			StartDate: "2026-02-02", EndDate: "2026-02-03",
		})
		require.NoError(t, err)
		return created
	}

	t.Run("direct manager approves", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		created := submit(t, st, svc)

		updated, err := svc.Decide(ctx, created.ID,
			leave.DecideRequest{Status: string(leave.StatusApproved), ManagerComment: "  ขอให้พักผ่อน  "},
			"1", employee.RoleManager)
		require.NoError(t, err)

		assert.Equal(t, leave.StatusApproved, updated.Status)
		require.NotNil(t, updated.ReviewedAt)
		require.NotNil(t, updated.ManagerComment)
		assert.Equal(t, "ขอให้พักผ่อน", *updated.ManagerComment)

		notifications, err := st.NotificationsFor(ctx, "002")
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "คำขอลาได้รับการอนุมัติ", notifications[0].Title)
	})

	t.Run("unrelated manager gets not-found", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		created := submit(t, st, svc)
		seedEmployee(t, st, employee.Employee{ID: "003", Name: "Other", Role: employee.RoleManager})

		_, err := svc.Decide(ctx, created.ID,
			leave.DecideRequest{Status: string(leave.StatusApproved)},
			"003", employee.RoleManager)
		assert.ErrorIs(t, err, leave.ErrRequestNotFound)

		// The request is untouched
		got, err := st.RequestByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, got.Status)
	})

	t.Run("admin can decide any request", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		created := submit(t, st, svc)
		seedEmployee(t, st, employee.Employee{ID: "009", Name: "Admin", Role: employee.RoleAdmin})

		updated, err := svc.Decide(ctx, created.ID,
			leave.DecideRequest{Status: string(leave.StatusRejected)},
			"009", employee.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, updated.Status)
		assert.Nil(t, updated.ManagerComment)
	})

	t.Run("second decision is refused", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)
		created := submit(t, st, svc)

		_, err := svc.Decide(ctx, created.ID,
			leave.DecideRequest{Status: string(leave.StatusApproved)}, "001", employee.RoleManager)
		require.NoError(t, err)

		_, err = svc.Decide(ctx, created.ID,
			leave.DecideRequest{Status: string(leave.StatusRejected)}, "001", employee.RoleManager)
		assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)
	})

	t.Run("unknown id", func(t *testing.T) {
		st := newTestStore(t)
		svc := newRequestService(t, st)

		_, err := svc.Decide(ctx, "LR-missing",
			leave.DecideRequest{Status: string(leave.StatusApproved)}, "001", employee.RoleAdmin)
		assert.ErrorIs(t, err, leave.ErrRequestNotFound)
	})
}
