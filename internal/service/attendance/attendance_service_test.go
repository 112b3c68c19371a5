package attendance_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	attendanceService "github.com/leaveflow/leaveflow-backend-go/internal/service/attendance"
	notificationService "github.com/leaveflow/leaveflow-backend-go/internal/service/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*store.Store, *attendanceService.AttendanceService) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.Seed(ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(
		sqlite.NewEmployeeRepository(db),
		sqlite.NewLeaveTypeRepository(db),
		sqlite.NewLeaveRequestRepository(db),
		sqlite.NewHolidayRepository(db),
		sqlite.NewAttendanceRepository(db),
		sqlite.NewNotificationRepository(db),
		logger,
	)
	require.NoError(t, st.LoadAll(ctx))

	notifier := notificationService.NewNotificationService(st, logger)
	return st, attendanceService.NewAttendanceService(st, notifier, logger)
}

func seedEmployee(t *testing.T, st *store.Store, emp employee.Employee) {
	t.Helper()
	if emp.Role == "" {
		emp.Role = employee.RoleEmployee
	}
	if emp.Gender == "" {
		emp.Gender = employee.Male
	}
	_, err := st.CreateEmployee(context.Background(), emp)
	require.NoError(t, err)
}

func TestClockManualEntry(t *testing.T) {
	ctx := context.Background()
	st, svc := setup(t)
	seedEmployee(t, st, employee.Employee{ID: "001", Name: "Somchai"})

	rec, err := svc.Clock(ctx, attendance.ClockRequest{
		UserID:  "001",
		Date:    "2026-02-02",
		CheckIn: strPtr("09:00:00"),
	})
	require.NoError(t, err)
	assert.False(t, rec.IsLate())
	assert.False(t, rec.PenaltyApplied)

	// A later check-out merges into the same row, keeping the check-in
	rec, err = svc.Clock(ctx, attendance.ClockRequest{
		UserID:   "001",
		Date:     "2026-02-02",
		CheckOut: strPtr("18:05:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.Equal(t, "09:00:00", *rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "18:05:00", *rec.CheckOut)

	records, err := svc.ListFor(ctx, "001")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClockLatePenalty(t *testing.T) {
	ctx := context.Background()
	st, svc := setup(t)
	seedEmployee(t, st, employee.Employee{
		ID: "001", Name: "Somchai", ManagerID: strPtr("000"),
		Quotas: map[string]float64{leave.TypeVacation: 12},
	})

	rec, err := svc.Clock(ctx, attendance.ClockRequest{
		UserID:  "001",
		Date:    "2026-02-02",
		CheckIn: strPtr("09:45:00"),
	})
	require.NoError(t, err)
	assert.True(t, rec.IsLate())
	assert.True(t, rec.PenaltyApplied)

	emp, err := st.EmployeeByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, 11.75, emp.Quotas[leave.TypeVacation])

	notifications, err := st.NotificationsFor(ctx, "001")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "แจ้งเตือนการเข้างานสาย", notifications[0].Title)

	// Re-punching the same day must not deduct again
	_, err = svc.Clock(ctx, attendance.ClockRequest{
		UserID:   "001",
		Date:     "2026-02-02",
		CheckOut: strPtr("18:00:00"),
	})
	require.NoError(t, err)

	emp, err = st.EmployeeByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, 11.75, emp.Quotas[leave.TypeVacation])
}

func TestClockLatePenaltyFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	st, svc := setup(t)
	seedEmployee(t, st, employee.Employee{
		ID: "001", Name: "Somchai",
		Quotas: map[string]float64{leave.TypeVacation: 0.1},
	})

	_, err := svc.Clock(ctx, attendance.ClockRequest{
		UserID:  "001",
		Date:    "2026-02-02",
		CheckIn: strPtr("10:00:00"),
	})
	require.NoError(t, err)

	emp, err := st.EmployeeByID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, 0.0, emp.Quotas[leave.TypeVacation])
}
