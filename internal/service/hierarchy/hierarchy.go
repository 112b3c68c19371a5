// Package hierarchy resolves the org tree from the flat roster's
// manager links.
package hierarchy

import (
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
)

// Descendants returns the transitive reports of the manager: direct reports,
// their reports, and so on. The result never contains the manager's own id.
// A visited set guards against malformed cyclic data even though the roster
// invariant forbids cycles.
func Descendants(managerID string, employees []employee.Employee) map[string]bool {
	managerID = identifier.Canonical(managerID)

	reports := make(map[string][]string, len(employees))
	for _, e := range employees {
		if e.ManagerID == nil {
			continue
		}
		mid := identifier.Canonical(*e.ManagerID)
		reports[mid] = append(reports[mid], identifier.Canonical(e.ID))
	}

	result := make(map[string]bool)
	queue := append([]string(nil), reports[managerID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == managerID || result[id] {
			continue
		}
		result[id] = true
		queue = append(queue, reports[id]...)
	}
	return result
}

// ReportingScope returns the employees a manager's reports and dashboards
// cover. Freshly migrated datasets may lack manager links, so the scope
// degrades in order: transitive closure, then direct manager-id match, then
// everyone except the manager. The widening keeps reports non-empty while
// hierarchy data is incomplete.
func ReportingScope(managerID string, employees []employee.Employee) []employee.Employee {
	managerID = identifier.Canonical(managerID)

	closure := Descendants(managerID, employees)
	if len(closure) > 0 {
		out := make([]employee.Employee, 0, len(closure))
		for _, e := range employees {
			if closure[identifier.Canonical(e.ID)] {
				out = append(out, e)
			}
		}
		return out
	}

	var direct []employee.Employee
	for _, e := range employees {
		if e.ManagerID != nil && identifier.Canonical(*e.ManagerID) == managerID {
			direct = append(direct, e)
		}
	}
	if len(direct) > 0 {
		return direct
	}

	out := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if identifier.Canonical(e.ID) != managerID {
			out = append(out, e)
		}
	}
	return out
}

// ScopeIDs returns the canonical ids of ReportingScope's result.
func ScopeIDs(managerID string, employees []employee.Employee) []string {
	scope := ReportingScope(managerID, employees)
	ids := make([]string, 0, len(scope))
	for _, e := range scope {
		ids = append(ids, identifier.Canonical(e.ID))
	}
	return ids
}
