package leave

import (
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

// Overlaps reports whether two inclusive date ranges intersect:
// aStart <= bEnd && bStart <= aEnd.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasOverlap checks a candidate range against the employee's own PENDING
// and APPROVED requests. Rejected requests do not block a new filing.
func HasOverlap(start, end time.Time, existing []leave.LeaveRequest) bool {
	for _, r := range existing {
		if !r.Open() {
			continue
		}
		if Overlaps(start, end, r.StartDate, r.EndDate) {
			return true
		}
	}
	return false
}
