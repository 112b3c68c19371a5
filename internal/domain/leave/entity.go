package leave

import (
	"strings"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
)

// LeaveType is a leave category definition, managed by admins. IDs are kept
// in one canonical UPPERCASE form; "deletion" only clears IsActive because
// historical requests keep referencing the id.
type LeaveType struct {
	ID           string
	Label        string
	ApplicableTo Applicability
	DefaultQuota float64
	Order        int
	IsActive     bool
}

type Applicability string

const (
	ApplicableMale   Applicability = "male"
	ApplicableFemale Applicability = "female"
	ApplicableBoth   Applicability = "both"
)

// Standard leave type ids. SICK and VACATION carry special rules
// (retroactive-only filing, tenure gating and the lateness penalty).
const (
	TypeSick          = "SICK"
	TypeVacation      = "VACATION"
	TypePersonal      = "PERSONAL"
	TypeMaternity     = "MATERNITY"
	TypeSterilization = "STERILIZATION"
	TypePaternity     = "PATERNITY"
	TypeOrdination    = "ORDINATION"
	TypeMilitary      = "MILITARY"
	TypeOther         = "OTHER"
)

// AppliesTo reports whether the type is selectable by an employee of the
// given gender.
func (t LeaveType) AppliesTo(g employee.Gender) bool {
	return t.ApplicableTo == ApplicableBoth || string(t.ApplicableTo) == string(g)
}

// NormalizeTypeList uppercases every id and drops duplicates, keeping the
// first definition per id. Older datasets carry lowercase ids.
func NormalizeTypeList(list []LeaveType) []LeaveType {
	seen := make(map[string]bool, len(list))
	out := make([]LeaveType, 0, len(list))
	for _, t := range list {
		t.ID = strings.ToUpper(strings.TrimSpace(t.ID))
		if t.ID == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// TypesForGender filters active types applicable to the gender, ordered by
// display order.
func TypesForGender(list []LeaveType, g employee.Gender) []LeaveType {
	out := make([]LeaveType, 0, len(list))
	for _, t := range list {
		if t.IsActive && t.AppliesTo(g) {
			out = append(out, t)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// DefaultQuotaFor returns the default quota of the given type id, or 0 when
// the type is unknown.
func DefaultQuotaFor(list []LeaveType, typeID string) float64 {
	for _, t := range list {
		if t.ID == typeID {
			return t.DefaultQuota
		}
	}
	return 0
}

// QuotasForGender builds the initial quota map for a new employee from the
// active types applicable to their gender.
func QuotasForGender(list []LeaveType, g employee.Gender) map[string]float64 {
	q := make(map[string]float64)
	for _, t := range list {
		if t.IsActive && t.AppliesTo(g) {
			q[t.ID] = t.DefaultQuota
		}
	}
	return q
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// LeaveRequest is a single leave filing. Start and end are inclusive
// calendar dates. A request transitions out of PENDING exactly once and is
// never revived.
type LeaveRequest struct {
	ID             string
	EmployeeID     string
	EmployeeName   string
	TypeID         string
	StartDate      time.Time
	EndDate        time.Time
	Reason         string
	Status         RequestStatus
	SubmittedAt    time.Time
	ReviewedAt     *time.Time
	ManagerComment *string
}

// Open reports whether the request still reserves quota (pending or
// approved).
func (r LeaveRequest) Open() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}
