package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainAuth "github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	authService "github.com/leaveflow/leaveflow-backend-go/internal/service/auth"
)

func setup(t *testing.T) (*authService.AuthService, jwt.Service) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	employees := sqlite.NewEmployeeRepository(db)

	hash, err := authService.HashPassword("s3cret-pass")
	require.NoError(t, err)
	_, err = employees.Create(context.Background(), employee.Employee{
		ID:           "001",
		Name:         "Somchai",
		Email:        "somchai@example.com",
		Role:         employee.RoleManager,
		Gender:       employee.Male,
		JoinDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		PasswordHash: hash,
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	return authService.NewAuthService(employees, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := setup(t)

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		resp, err := svc.Login(ctx, domainAuth.LoginRequest{
			Email:    "somchai@example.com",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, "001", resp.User.ID)

		token, err := jwtService.JWTAuth().Decode(resp.Token)
		require.NoError(t, err)
		claims, err := token.AsMap(ctx)
		require.NoError(t, err)

		id, role, ok := jwt.ClaimsFromMap(claims)
		require.True(t, ok)
		assert.Equal(t, "001", id)
		assert.Equal(t, employee.RoleManager, role)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, domainAuth.LoginRequest{
			Email:    "SOMCHAI@example.com",
			Password: "s3cret-pass",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domainAuth.LoginRequest{
			Email:    "somchai@example.com",
			Password: "wrong-pass",
		})
		assert.ErrorIs(t, err, domainAuth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, domainAuth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "s3cret-pass",
		})
		assert.ErrorIs(t, err, domainAuth.ErrInvalidCredentials)
	})
}
