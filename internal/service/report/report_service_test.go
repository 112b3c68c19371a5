package report_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	reportService "github.com/leaveflow/leaveflow-backend-go/internal/service/report"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func setup(t *testing.T) (*store.Store, *reportService.ReportService) {
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
	return st, reportService.NewReportService(st, logger)
}

func seedRoster(t *testing.T, st *store.Store) {
	t.Helper()
	ctx := context.Background()
	for _, emp := range []employee.Employee{
		{ID: "001", Name: "Manager", Role: employee.RoleManager, Gender: employee.Male, JoinDate: date("2020-01-01")},
		{ID: "002", Name: "Somchai", Role: employee.RoleEmployee, Gender: employee.Male, JoinDate: date("2021-01-01"), ManagerID: strPtr("001")},
		{ID: "003", Name: "Suda", Role: employee.RoleEmployee, Gender: employee.Female, JoinDate: date("2021-01-01")},
	} {
		_, err := st.CreateEmployee(ctx, emp)
		require.NoError(t, err)
	}
}

func seedRequest(t *testing.T, st *store.Store, id, employeeID, typeID string, status leave.RequestStatus, start, end string) {
	t.Helper()
	_, err := st.CreateRequest(context.Background(), leave.LeaveRequest{
		ID:          id,
		EmployeeID:  employeeID,
		TypeID:      typeID,
		StartDate:   date(start),
		EndDate:     date(end),
		Status:      status,
		SubmittedAt: date(start),
	})
	require.NoError(t, err)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	st, svc := setup(t)
	seedRoster(t, st)

	// Feb 2-3 2026: Mon-Tue, 2 business days
	seedRequest(t, st, "LR1", "002", leave.TypeVacation, leave.StatusApproved, "2026-02-02", "2026-02-03")
	seedRequest(t, st, "LR2", "002", leave.TypeSick, leave.StatusPending, "2026-02-05", "2026-02-05")
	// Rejected counts as a request but contributes no days
	seedRequest(t, st, "LR3", "003", leave.TypeVacation, leave.StatusRejected, "2026-02-09", "2026-02-10")
	// Weekend-only approved leave falls back to calendar days
	seedRequest(t, st, "LR4", "003", leave.TypePersonal, leave.StatusApproved, "2026-02-07", "2026-02-08")
	// Other month, excluded by the month filter
	seedRequest(t, st, "LR5", "002", leave.TypeVacation, leave.StatusApproved, "2026-03-09", "2026-03-10")

	t.Run("admin sees every employee", func(t *testing.T) {
		summary := svc.Summary(ctx, "999", employee.RoleAdmin, 2026, 2, "")
		byType := make(map[string]reportService.TypeSummary)
		for _, e := range summary.Entries {
			byType[e.TypeID] = e
		}

		require.Len(t, summary.Entries, 3)
		assert.Equal(t, 2, byType[leave.TypeVacation].Requests)
		assert.Equal(t, 2.0, byType[leave.TypeVacation].Days)
		assert.Equal(t, 1.0, byType[leave.TypeSick].Days)
		assert.Equal(t, 2.0, byType[leave.TypePersonal].Days)
	})

	t.Run("whole year without month filter", func(t *testing.T) {
		summary := svc.Summary(ctx, "999", employee.RoleAdmin, 2026, 0, "")
		byType := make(map[string]reportService.TypeSummary)
		for _, e := range summary.Entries {
			byType[e.TypeID] = e
		}
		assert.Equal(t, 3, byType[leave.TypeVacation].Requests)
		assert.Equal(t, 4.0, byType[leave.TypeVacation].Days)
	})

	t.Run("manager is scoped to their reports", func(t *testing.T) {
		summary := svc.Summary(ctx, "001", employee.RoleManager, 2026, 2, "")
		byType := make(map[string]reportService.TypeSummary)
		for _, e := range summary.Entries {
			byType[e.TypeID] = e
		}

		// 003 has no manager link, so only 002's requests are visible
		assert.Equal(t, 1, byType[leave.TypeVacation].Requests)
		_, hasPersonal := byType[leave.TypePersonal]
		assert.False(t, hasPersonal)
	})

	t.Run("employee filter narrows the rows", func(t *testing.T) {
		summary := svc.Summary(ctx, "999", employee.RoleAdmin, 2026, 2, "3")
		require.Len(t, summary.Entries, 2)
		for _, e := range summary.Entries {
			assert.NotEqual(t, leave.TypeSick, e.TypeID)
		}
	})
}
