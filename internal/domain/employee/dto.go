package employee

import (
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

const maxNameLength = 200

type CreateEmployeeRequest struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Password   string             `json:"password"`
	Role       string             `json:"role"`
	Gender     string             `json:"gender"`
	Department string             `json:"department"`
	JoinDate   string             `json:"joinDate"`
	ManagerID  *string            `json:"managerId,omitempty"`
	Quotas     map[string]float64 `json:"quotas,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len([]rune(r.Name)) > maxNameLength {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 200 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be EMPLOYEE, MANAGER or ADMIN",
		})
	}

	if !IsValidGender(r.Gender) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joinDate",
			Message: "joinDate must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a partial field set; nil pointers leave the
// stored value untouched. Quotas, when present, replaces the whole map.
type UpdateEmployeeRequest struct {
	ID         string             `json:"id"`
	Name       *string            `json:"name,omitempty"`
	Email      *string            `json:"email,omitempty"`
	Password   *string            `json:"password,omitempty"`
	Role       *string            `json:"role,omitempty"`
	Gender     *string            `json:"gender,omitempty"`
	Department *string            `json:"department,omitempty"`
	JoinDate   *string            `json:"joinDate,omitempty"`
	ManagerID  *string            `json:"managerId,omitempty"`
	Quotas     map[string]float64 `json:"quotas,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if r.Role != nil && !IsValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be EMPLOYEE, MANAGER or ADMIN",
		})
	}

	if r.Gender != nil && !IsValidGender(*r.Gender) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}

	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joinDate",
				Message: "joinDate must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeResponse is the wire shape for an employee; the password hash
// never leaves the server.
type EmployeeResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Role       Role               `json:"role"`
	Gender     Gender             `json:"gender"`
	Department string             `json:"department"`
	JoinDate   string             `json:"joinDate"`
	ManagerID  *string            `json:"managerId,omitempty"`
	Quotas     map[string]float64 `json:"quotas"`
}

func ToResponse(e Employee) EmployeeResponse {
	joinDate := ""
	if !e.JoinDate.IsZero() {
		joinDate = e.JoinDate.Format("2006-01-02")
	}
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		Gender:     e.Gender,
		Department: e.Department,
		JoinDate:   joinDate,
		ManagerID:  e.ManagerID,
		Quotas:     e.Quotas,
	}
}

func ToResponseList(list []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToResponse(e))
	}
	return out
}
