package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrLastEmployee     = errors.New("cannot delete the last remaining employee")
)
