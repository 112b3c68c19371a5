// Package auth holds the login contract. Authentication is email +
// password (bcrypt) exchanged for an HS256 bearer token.
package auth

import (
	"errors"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	Token string                    `json:"token"`
	User  employee.EmployeeResponse `json:"user"`
}
