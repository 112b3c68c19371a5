package attendance

import "time"

// LateCutoff is the clock time after which a check-in counts as late.
const LateCutoff = "09:30:00"

// PenaltyDays is the vacation quota deduction for one late check-in.
const PenaltyDays float64 = 0.25

// Record is one attendance row. There is at most one per (employee, date);
// check-ins and check-outs on the same day merge into it. Clock times are
// plain "HH:MM:SS" strings so they compare lexicographically.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	CheckIn        *string
	CheckOut       *string
	Status         string
	PenaltyApplied bool
	CreatedAt      time.Time
}

const StatusPresent = "present"

// IsLate reports whether the record's check-in is after the cutoff.
func (r Record) IsLate() bool {
	return r.CheckIn != nil && *r.CheckIn > LateCutoff
}
