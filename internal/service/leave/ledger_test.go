package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	leaveService "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestOverlaps(t *testing.T) {
	assert.True(t, leaveService.Overlaps(date("2026-02-02"), date("2026-02-04"), date("2026-02-04"), date("2026-02-06")))
	assert.True(t, leaveService.Overlaps(date("2026-02-02"), date("2026-02-06"), date("2026-02-03"), date("2026-02-04")))
	assert.False(t, leaveService.Overlaps(date("2026-02-02"), date("2026-02-03"), date("2026-02-04"), date("2026-02-05")))
}

func TestHasOverlap(t *testing.T) {
	existing := []leave.LeaveRequest{
		{StartDate: date("2026-02-02"), EndDate: date("2026-02-04"), Status: leave.StatusPending},
		{StartDate: date("2026-02-09"), EndDate: date("2026-02-10"), Status: leave.StatusRejected},
	}

	assert.True(t, leaveService.HasOverlap(date("2026-02-04"), date("2026-02-05"), existing))

	// Rejected requests do not block a new filing on the same dates
	assert.False(t, leaveService.HasOverlap(date("2026-02-09"), date("2026-02-10"), existing))
}

func TestComputeUsage(t *testing.T) {
	requests := []leave.LeaveRequest{
		// Mon-Tue approved: 2 business days
		{EmployeeID: "001", TypeID: leave.TypePersonal, Status: leave.StatusApproved,
			StartDate: date("2026-02-02"), EndDate: date("2026-02-03")},
		// Thu pending: reserves 1 day
		{EmployeeID: "001", TypeID: leave.TypePersonal, Status: leave.StatusPending,
			StartDate: date("2026-02-05"), EndDate: date("2026-02-05")},
		// Rejected requests never count
		{EmployeeID: "001", TypeID: leave.TypePersonal, Status: leave.StatusRejected,
			StartDate: date("2026-02-09"), EndDate: date("2026-02-13")},
		// Other employee, other type, other year all ignored
		{EmployeeID: "002", TypeID: leave.TypePersonal, Status: leave.StatusApproved,
			StartDate: date("2026-02-02"), EndDate: date("2026-02-03")},
		{EmployeeID: "001", TypeID: leave.TypeSick, Status: leave.StatusApproved,
			StartDate: date("2026-02-02"), EndDate: date("2026-02-03")},
		{EmployeeID: "001", TypeID: leave.TypePersonal, Status: leave.StatusApproved,
			StartDate: date("2025-02-03"), EndDate: date("2025-02-04")},
	}

	u := leaveService.ComputeUsage("001", leave.TypePersonal, 2026, requests, nil)
	assert.Equal(t, 2.0, u.ApprovedDays)
	assert.Equal(t, 1.0, u.PendingDays)
	assert.Equal(t, 3.0, u.Used())
}

func TestEffectiveQuota(t *testing.T) {
	now := date("2026-08-28")

	veteran := employee.Employee{
		JoinDate: date("2020-01-15"),
		Quotas:   map[string]float64{leave.TypeVacation: 12},
	}
	assert.Equal(t, 12.0, leaveService.EffectiveQuota(veteran, leave.TypeVacation, 12, now))

	newcomer := employee.Employee{
		JoinDate: date("2026-03-01"),
		Quotas:   map[string]float64{leave.TypeVacation: 12},
	}
	assert.Equal(t, 0.0, leaveService.EffectiveQuota(newcomer, leave.TypeVacation, 12, now))

	// Tenure gating applies to vacation only
	assert.Equal(t, 3.0, leaveService.EffectiveQuota(newcomer, leave.TypePersonal, 3, now))
}

func TestRemaining(t *testing.T) {
	u := leaveService.Usage{ApprovedDays: 2, PendingDays: 1.5}
	assert.Equal(t, 8.5, leaveService.Remaining(12, u))

	// Penalty deductions can push the balance negative
	assert.Equal(t, -0.5, leaveService.Remaining(3, u))
}

func TestVacationLedger(t *testing.T) {
	reviewed := date("2026-02-06")
	requests := []leave.LeaveRequest{
		{ID: "LR1", EmployeeID: "001", TypeID: leave.TypeVacation, Status: leave.StatusApproved,
			StartDate: date("2026-02-02"), EndDate: date("2026-02-03"),
			SubmittedAt: date("2026-02-01"), ReviewedAt: &reviewed},
		// Pending vacation stays off the statement
		{ID: "LR2", EmployeeID: "001", TypeID: leave.TypeVacation, Status: leave.StatusPending,
			StartDate: date("2026-03-09"), EndDate: date("2026-03-10"), SubmittedAt: date("2026-03-01")},
	}
	records := []attendance.Record{
		{ID: "A1", EmployeeID: "001", Date: date("2026-02-10"),
			CheckIn: strPtr("09:45:00"), PenaltyApplied: true},
		// Late but never penalized, not a ledger movement
		{ID: "A2", EmployeeID: "001", Date: date("2026-02-11"),
			CheckIn: strPtr("10:00:00"), PenaltyApplied: false},
	}

	entries, total := leaveService.VacationLedger("001", 2026, requests, records, nil)

	assert.Len(t, entries, 2)
	assert.Equal(t, 2.25, total)

	// Newest first: the Feb 10 penalty precedes the Feb 6 approval
	assert.Equal(t, leaveService.LedgerKindPenalty, entries[0].Kind)
	assert.Equal(t, 0.25, entries[0].Amount)
	assert.Equal(t, leaveService.LedgerKindLeave, entries[1].Kind)
	assert.Equal(t, 2.0, entries[1].Amount)
}
