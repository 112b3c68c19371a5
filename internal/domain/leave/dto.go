package leave

import (
	"strings"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

const (
	maxReasonLength  = 2000
	maxCommentLength = 500
	maxLabelLength   = 200
)

type SubmitLeaveRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Type         string `json:"type"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must not be after endDate",
		})
	}

	if len([]rune(r.Reason)) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	Status         string `json:"status"`
	ManagerComment string `json:"managerComment"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len([]rune(r.ManagerComment)) > maxCommentLength {
		errs = append(errs, validator.ValidationError{
			Field:   "managerComment",
			Message: "managerComment must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Comment returns the trimmed manager comment, nil when blank.
func (r *DecideRequest) Comment() *string {
	c := strings.TrimSpace(r.ManagerComment)
	if c == "" {
		return nil
	}
	return &c
}

type SaveLeaveTypeRequest struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	ApplicableTo string  `json:"applicableTo"`
	DefaultQuota float64 `json:"defaultQuota"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

func (r *SaveLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if len([]rune(r.Label)) > maxLabelLength {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label must not exceed 200 characters",
		})
	}

	switch Applicability(r.ApplicableTo) {
	case ApplicableMale, ApplicableFemale, ApplicableBoth:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "applicableTo",
			Message: "applicableTo must be male, female or both",
		})
	}

	if r.DefaultQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "defaultQuota",
			Message: "defaultQuota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveTypeResponse struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	ApplicableTo string  `json:"applicableTo"`
	DefaultQuota float64 `json:"defaultQuota"`
	Order        int     `json:"order"`
	IsActive     bool    `json:"isActive"`
}

func ToTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           t.ID,
		Label:        t.Label,
		ApplicableTo: string(t.ApplicableTo),
		DefaultQuota: t.DefaultQuota,
		Order:        t.Order,
		IsActive:     t.IsActive,
	}
}

func ToTypeResponseList(list []LeaveType) []LeaveTypeResponse {
	out := make([]LeaveTypeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTypeResponse(t))
	}
	return out
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	EmployeeName   string  `json:"employeeName"`
	Type           string  `json:"type"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	SubmittedAt    string  `json:"submittedAt"`
	ReviewedAt     *string `json:"reviewedAt,omitempty"`
	ManagerComment *string `json:"managerComment,omitempty"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		Type:           r.TypeID,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		Reason:         r.Reason,
		Status:         string(r.Status),
		SubmittedAt:    r.SubmittedAt.UTC().Format(time.RFC3339),
		ManagerComment: r.ManagerComment,
	}
	if r.ReviewedAt != nil {
		reviewed := r.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

func ToRequestResponseList(list []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToRequestResponse(r))
	}
	return out
}
