package employee_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
	"github.com/leaveflow/leaveflow-backend-go/internal/repository/sqlite"
	employeeService "github.com/leaveflow/leaveflow-backend-go/internal/service/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*store.Store, *employeeService.EmployeeService) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.Seed(ctx))

	st := store.New(
		sqlite.NewEmployeeRepository(db),
		sqlite.NewLeaveTypeRepository(db),
		sqlite.NewLeaveRequestRepository(db),
		sqlite.NewHolidayRepository(db),
		sqlite.NewAttendanceRepository(db),
		sqlite.NewNotificationRepository(db),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, st.LoadAll(ctx))
	return st, employeeService.NewEmployeeService(st)
}

func create(t *testing.T, svc *employeeService.EmployeeService, req employee.CreateEmployeeRequest) employee.Employee {
	t.Helper()
	if req.Role == "" {
		req.Role = string(employee.RoleEmployee)
	}
	if req.Gender == "" {
		req.Gender = string(employee.Male)
	}
	if req.JoinDate == "" {
		req.JoinDate = "2023-06-01"
	}
	if req.Password == "" {
		req.Password = "changeme123"
	}
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return created
}

func TestCreate(t *testing.T) {
	_, svc := setup(t)

	first := create(t, svc, employee.CreateEmployeeRequest{
		Name: "Somchai", Email: "somchai@example.com", Password: "s3cret-pass",
	})
	assert.Equal(t, "001", first.ID)

	// Sequential zero-padded ids
	second := create(t, svc, employee.CreateEmployeeRequest{
		Name: "Suda", Email: "suda@example.com", Gender: string(employee.Female),
	})
	assert.Equal(t, "002", second.ID)

	// Password stored as a bcrypt hash
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first.PasswordHash), []byte("s3cret-pass")))

	// Quotas default from the catalogue per gender: male types present,
	// female-only types absent
	assert.Equal(t, 30.0, first.Quotas[leave.TypeSick])
	assert.Equal(t, 15.0, first.Quotas[leave.TypePaternity])
	_, hasMaternity := first.Quotas[leave.TypeMaternity]
	assert.False(t, hasMaternity)

	assert.Equal(t, 90.0, second.Quotas[leave.TypeMaternity])
	_, hasPaternity := second.Quotas[leave.TypePaternity]
	assert.False(t, hasPaternity)
}

func TestCreateDuplicateEmail(t *testing.T) {
	_, svc := setup(t)
	create(t, svc, employee.CreateEmployeeRequest{Name: "Somchai", Email: "somchai@example.com"})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Other", Email: "SOMCHAI@example.com", Password: "changeme123",
		Role: string(employee.RoleEmployee), Gender: string(employee.Male), JoinDate: "2023-06-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)
	created := create(t, svc, employee.CreateEmployeeRequest{
		Name: "Somchai", Email: "somchai@example.com", ManagerID: strPtr("9"),
	})
	require.NotNil(t, created.ManagerID)
	assert.Equal(t, "009", *created.ManagerID)

	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Department: strPtr("Engineering"),
		Quotas:     map[string]float64{leave.TypeVacation: 6},
	})
	require.NoError(t, err)

	// Untouched fields survive, the quota map is replaced wholesale
	assert.Equal(t, "Somchai", updated.Name)
	assert.Equal(t, "Engineering", updated.Department)
	assert.Equal(t, map[string]float64{leave.TypeVacation: 6}, updated.Quotas)

	// Empty manager id clears the link
	updated, err = svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:        created.ID,
		ManagerID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ManagerID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)
	first := create(t, svc, employee.CreateEmployeeRequest{Name: "Somchai", Email: "somchai@example.com"})

	// The last roster entry cannot be removed
	err := svc.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, employee.ErrLastEmployee)

	second := create(t, svc, employee.CreateEmployeeRequest{Name: "Suda", Email: "suda@example.com"})
	require.NoError(t, svc.Delete(ctx, second.ID))

	remaining, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, first.ID, remaining[0].ID)
}
