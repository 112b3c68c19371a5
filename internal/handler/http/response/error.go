package response

import (
	"errors"
	"net/http"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/attendance"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/holiday"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/notification"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient privileges")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrLastEmployee):
		Conflict(w, "Cannot delete the last employee")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound), errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Leave type is not available for this employee", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrQuotaExceeded):
		BadRequest(w, "Leave quota exceeded", nil)
	case errors.Is(err, leave.ErrSickLeaveInFuture):
		BadRequest(w, "Sick leave can only be filed retroactively", nil)
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Store errors
	case errors.Is(err, store.ErrBackendUnreachable):
		writeJSON(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "SERVICE_UNAVAILABLE",
				Message: "Storage backend unreachable",
			},
		})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
