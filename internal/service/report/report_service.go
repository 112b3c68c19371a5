package report

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/calendar"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/hierarchy"
	leaveservice "github.com/leaveflow/leaveflow-backend-go/internal/service/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

// TypeSummary is one row of the per-type report: how many requests of the
// type fell in the period and how many days they cover. Day counts use the
// calendar-day fallback so a leave taken entirely over holidays still shows
// its real length.
type TypeSummary struct {
	TypeID   string  `json:"type"`
	Label    string  `json:"label"`
	Requests int     `json:"requests"`
	Days     float64 `json:"days"`
}

type Summary struct {
	Year    int           `json:"year"`
	Month   int           `json:"month,omitempty"`
	Entries []TypeSummary `json:"entries"`
}

type ReportService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewReportService(st *store.Store, logger *slog.Logger) *ReportService {
	return &ReportService{store: st, logger: logger}
}

// scopedRequests returns the requests the actor may report on: admins see
// everything, managers their reporting scope (refreshed with a scoped load
// first), employees only themselves.
func (s *ReportService) scopedRequests(ctx context.Context, actorID string, actorRole employee.Role) []leave.LeaveRequest {
	actorID = identifier.Canonical(actorID)

	if actorRole == employee.RoleAdmin {
		return s.store.Requests()
	}

	if actorRole == employee.RoleManager {
		employees := s.store.Employees()
		closure := hierarchy.Descendants(actorID, employees)
		ids := make([]string, 0, len(closure))
		for id := range closure {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		if _, err := s.store.LoadRequestsForManager(ctx, actorID, ids); err != nil {
			s.logger.Warn("scoped request refresh failed", "manager_id", actorID, "error", err)
		}

		scope := make(map[string]bool, len(ids)+1)
		for _, e := range hierarchy.ReportingScope(actorID, employees) {
			scope[identifier.Canonical(e.ID)] = true
		}
		var out []leave.LeaveRequest
		for _, r := range s.store.Requests() {
			if scope[r.EmployeeID] {
				out = append(out, r)
			}
		}
		return out
	}

	return s.store.RequestsByEmployee(actorID)
}

// Summary aggregates the actor's visible requests for a year (month 0) or a
// single month, per leave type.
func (s *ReportService) Summary(ctx context.Context, actorID string, actorRole employee.Role, year, month int, filterEmployeeID string) Summary {
	requests := s.scopedRequests(ctx, actorID, actorRole)
	holidays := s.store.Holidays()
	types := s.store.LeaveTypes()

	labels := make(map[string]string, len(types))
	order := make([]string, 0, len(types))
	for _, t := range types {
		if t.IsActive {
			labels[t.ID] = t.Label
			order = append(order, t.ID)
		}
	}

	if filterEmployeeID != "" {
		filterEmployeeID = identifier.Canonical(filterEmployeeID)
	}

	byType := make(map[string]*TypeSummary)
	for _, r := range requests {
		if filterEmployeeID != "" && r.EmployeeID != filterEmployeeID {
			continue
		}
		if r.StartDate.Year() != year {
			continue
		}
		if month != 0 && int(r.StartDate.Month()) != month {
			continue
		}

		entry, ok := byType[r.TypeID]
		if !ok {
			label := labels[r.TypeID]
			if label == "" {
				label = r.TypeID
			}
			entry = &TypeSummary{TypeID: r.TypeID, Label: label}
			byType[r.TypeID] = entry
			if _, known := labels[r.TypeID]; !known {
				order = append(order, r.TypeID)
			}
		}
		entry.Requests++
		if r.Status != leave.StatusRejected {
			entry.Days += float64(calendar.CalendarOrBusinessDays(r.StartDate, r.EndDate, holidays))
		}
	}

	entries := make([]TypeSummary, 0, len(byType))
	for _, id := range order {
		if e, ok := byType[id]; ok && e.Requests > 0 {
			entries = append(entries, *e)
		}
	}
	return Summary{Year: year, Month: month, Entries: entries}
}

// VacationLedger returns the employee's vacation movement statement for the
// current year.
func (s *ReportService) VacationLedger(ctx context.Context, employeeID string) ([]leaveservice.LedgerEntry, float64, error) {
	employeeID = identifier.Canonical(employeeID)

	records, err := s.store.AttendanceFor(ctx, employeeID)
	if err != nil {
		return nil, 0, err
	}
	requests := s.store.RequestsByEmployee(employeeID)
	year := time.Now().Year()

	entries, total := leaveservice.VacationLedger(employeeID, year, requests, records, s.store.Holidays())
	return entries, total, nil
}
