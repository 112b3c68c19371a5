package attendance

import (
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

const (
	ClockIn  = "IN"
	ClockOut = "OUT"
)

// ClockRequest covers both entry formats: a real-time punch ({userId,
// type IN|OUT}, server clock) or a manual entry ({userId, date, checkIn,
// checkOut}).
type ClockRequest struct {
	UserID   string  `json:"userId"`
	Type     string  `json:"type,omitempty"`
	Date     string  `json:"date,omitempty"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	switch {
	case r.Type == ClockIn || r.Type == ClockOut:
	case r.Type != "":
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be IN or OUT",
		})
	case r.Date == "":
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "either type (IN/OUT) or date is required",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if r.CheckIn != nil && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkIn",
			Message: "checkIn must be HH:MM:SS",
		})
	}
	if r.CheckOut != nil && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "checkOut",
			Message: "checkOut must be HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Status   string  `json:"status"`
	IsLate   bool    `json:"isLate"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:       r.ID,
		UserID:   r.EmployeeID,
		Date:     r.Date.Format("2006-01-02"),
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Status:   r.Status,
		IsLate:   r.IsLate(),
	}
}

func ToResponseList(list []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToResponse(r))
	}
	return out
}
