package store

import (
	"context"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/identifier"
)

// LoadRequestsForManager refreshes the request snapshot for a manager's
// scoped view: the manager's own requests plus one list call per descendant
// id, merged into the existing snapshot by request id. Merging means a
// narrow fetch never erases requests a broader fetch already cached. When
// the hierarchy is empty the scope widens to the unscoped list. List
// failures keep the stale snapshot.
func (s *Store) LoadRequestsForManager(ctx context.Context, managerID string, descendantIDs []string) ([]leave.LeaveRequest, error) {
	managerID = identifier.Canonical(managerID)

	if len(descendantIDs) == 0 {
		reqs, err := s.requests.List(ctx)
		if err != nil {
			s.logger.Warn("scoped request load failed", "manager_id", managerID, "error", err)
			return s.Requests(), err
		}
		s.mu.Lock()
		s.reqSnap = canonicalRequests(reqs)
		s.reqLoaded = true
		s.mu.Unlock()
		return s.Requests(), nil
	}

	ids := append([]string{managerID}, descendantIDs...)
	var fetched []leave.LeaveRequest
	var firstErr error
	for _, id := range ids {
		list, err := s.requests.ListByEmployee(ctx, identifier.Canonical(id))
		if err != nil {
			s.logger.Warn("scoped request load failed", "employee_id", id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fetched = append(fetched, list...)
	}
	if firstErr != nil && len(fetched) == 0 {
		return s.Requests(), firstErr
	}

	fetched = canonicalRequests(fetched)

	s.mu.Lock()
	merged := make(map[string]leave.LeaveRequest, len(s.reqSnap)+len(fetched))
	order := make([]string, 0, len(s.reqSnap)+len(fetched))
	for _, r := range s.reqSnap {
		if _, ok := merged[r.ID]; !ok {
			order = append(order, r.ID)
		}
		merged[r.ID] = r
	}
	for _, r := range fetched {
		if _, ok := merged[r.ID]; !ok {
			order = append(order, r.ID)
		}
		merged[r.ID] = r
	}
	snap := make([]leave.LeaveRequest, 0, len(order))
	for _, id := range order {
		snap = append(snap, merged[id])
	}
	s.reqSnap = snap
	s.reqLoaded = true
	s.mu.Unlock()

	return s.Requests(), nil
}
