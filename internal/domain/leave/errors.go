package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrLeaveTypeNotFound       = errors.New("leave type not found")
	ErrInvalidLeaveType        = errors.New("invalid leave type")
	ErrInvalidDateRange        = errors.New("start date must not be after end date")
	ErrOverlappingRequest      = errors.New("date range overlaps an existing pending or approved request")
	ErrQuotaExceeded           = errors.New("insufficient leave quota")
	ErrSickLeaveInFuture       = errors.New("sick leave must be filed retroactively")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
)
