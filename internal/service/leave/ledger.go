package leave

import (
	"fmt"
	"sort"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/calendar"
)

// Usage is the quota consumption of one employee, leave type and year.
// Pending requests reserve quota, so Used counts both buckets.
type Usage struct {
	ApprovedDays float64
	PendingDays  float64
}

func (u Usage) Used() float64 {
	return u.ApprovedDays + u.PendingDays
}

// ComputeUsage sums business days over the employee's non-rejected requests
// of the given type whose start date falls in year.
func ComputeUsage(employeeID, typeID string, year int, requests []leave.LeaveRequest, holidays map[string]string) Usage {
	var u Usage
	for _, r := range requests {
		if r.EmployeeID != employeeID || r.TypeID != typeID {
			continue
		}
		if !r.Open() || r.StartDate.Year() != year {
			continue
		}
		days := float64(calendar.BusinessDays(r.StartDate, r.EndDate, holidays))
		if r.Status == leave.StatusApproved {
			u.ApprovedDays += days
		} else {
			u.PendingDays += days
		}
	}
	return u
}

// EffectiveQuota is the quota the balance view shows. Vacation entitlement
// starts after one full year of service, so under one year the effective
// VACATION quota is 0 regardless of the nominal value.
func EffectiveQuota(emp employee.Employee, typeID string, fallback float64, now time.Time) float64 {
	quota := emp.Quota(typeID, fallback)
	if typeID == leave.TypeVacation && emp.TenureYears(now) < 1 {
		return 0
	}
	return quota
}

// Remaining is quota minus used; it can go negative when the penalty path
// deducted quota after requests were already approved.
func Remaining(quota float64, u Usage) float64 {
	return quota - u.Used()
}

// LedgerEntry is one movement in the vacation statement: an approved
// vacation request or a late-arrival penalty.
type LedgerEntry struct {
	ID          string
	Date        time.Time
	Kind        string
	Description string
	Amount      float64
	Timestamp   string
}

const (
	LedgerKindLeave   = "LEAVE"
	LedgerKindPenalty = "PENALTY"
)

// VacationLedger builds the per-entry vacation statement for one employee
// and year: approved VACATION requests plus applied 0.25 lateness
// penalties, newest first, with the total deducted.
func VacationLedger(employeeID string, year int, requests []leave.LeaveRequest, records []attendance.Record, holidays map[string]string) ([]LedgerEntry, float64) {
	var entries []LedgerEntry

	for _, r := range requests {
		if r.EmployeeID != employeeID || r.TypeID != leave.TypeVacation {
			continue
		}
		if r.Status != leave.StatusApproved || r.StartDate.Year() != year {
			continue
		}
		ts := r.SubmittedAt
		if r.ReviewedAt != nil {
			ts = *r.ReviewedAt
		}
		entries = append(entries, LedgerEntry{
			ID:   r.ID,
			Date: r.StartDate,
			Kind: LedgerKindLeave,
			Description: fmt.Sprintf("ลาพักร้อน (%s ถึง %s)",
				r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02")),
			Amount:    float64(calendar.BusinessDays(r.StartDate, r.EndDate, holidays)),
			Timestamp: ts.UTC().Format(time.RFC3339),
		})
	}

	for _, a := range records {
		if a.EmployeeID != employeeID || !a.IsLate() || !a.PenaltyApplied {
			continue
		}
		if a.Date.Year() != year {
			continue
		}
		checkIn := ""
		if a.CheckIn != nil {
			checkIn = *a.CheckIn
		}
		entries = append(entries, LedgerEntry{
			ID:          a.ID,
			Date:        a.Date,
			Kind:        LedgerKindPenalty,
			Description: fmt.Sprintf("หักจากการเข้างานสาย (%s)", checkIn),
			Amount:      attendance.PenaltyDays,
			Timestamp:   a.Date.Format("2006-01-02") + "T" + checkIn,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})

	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return entries, total
}
