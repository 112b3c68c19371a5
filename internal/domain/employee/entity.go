package employee

import (
	"time"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Gender       Gender
	Department   string
	JoinDate     time.Time
	ManagerID    *string
	Quotas       map[string]float64
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func IsValidGender(g string) bool {
	return Gender(g) == Male || Gender(g) == Female
}

// UnlimitedQuota is the sentinel for "no annual limit" (e.g. sterilization
// leave). Any quota at or above it never blocks a request.
const UnlimitedQuota float64 = 999

// TenureYears returns length of service in fractional years as of now.
func (e Employee) TenureYears(now time.Time) float64 {
	if e.JoinDate.IsZero() || now.Before(e.JoinDate) {
		return 0
	}
	return now.Sub(e.JoinDate).Hours() / (24 * 365.25)
}

// Quota returns the employee's quota for a leave type, falling back to the
// given default when the type was never assigned.
func (e Employee) Quota(leaveTypeID string, fallback float64) float64 {
	if q, ok := e.Quotas[leaveTypeID]; ok {
		return q
	}
	return fallback
}
