package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
)

type AuthService struct {
	employees  employee.Repository
	jwtService jwt.Service
}

func NewAuthService(employees employee.Repository, jwtService jwt.Service) *AuthService {
	return &AuthService{employees: employees, jwtService: jwtService}
}

// Login exchanges email+password for a bearer token. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if emp.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.LoginResponse{
		Token: token,
		User:  employee.ToResponse(emp),
	}, nil
}

// HashPassword derives the stored bcrypt hash for a new password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
