package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/service/hierarchy"
)

func ptr(s string) *string { return &s }

func roster() []employee.Employee {
	return []employee.Employee{
		{ID: "001", Name: "A"},
		{ID: "002", Name: "B", ManagerID: ptr("001")},
		{ID: "003", Name: "C", ManagerID: ptr("002")},
		{ID: "004", Name: "D", ManagerID: ptr("003")},
		{ID: "005", Name: "E", ManagerID: ptr("001")},
	}
}

func TestDescendants(t *testing.T) {
	t.Run("transitive closure", func(t *testing.T) {
		got := hierarchy.Descendants("001", roster())
		assert.Equal(t, map[string]bool{"002": true, "003": true, "004": true, "005": true}, got)
	})

	t.Run("mid-tree manager", func(t *testing.T) {
		got := hierarchy.Descendants("002", roster())
		assert.Equal(t, map[string]bool{"003": true, "004": true}, got)
	})

	t.Run("leaf has no reports", func(t *testing.T) {
		assert.Empty(t, hierarchy.Descendants("004", roster()))
	})

	t.Run("unpadded id matches padded links", func(t *testing.T) {
		got := hierarchy.Descendants("2", roster())
		assert.Equal(t, map[string]bool{"003": true, "004": true}, got)
	})

	t.Run("cycle does not loop", func(t *testing.T) {
		cyclic := []employee.Employee{
			{ID: "001", ManagerID: ptr("002")},
			{ID: "002", ManagerID: ptr("001")},
		}
		got := hierarchy.Descendants("001", cyclic)
		// The manager never appears in its own closure
		assert.Equal(t, map[string]bool{"002": true}, got)
	})
}

func TestReportingScope(t *testing.T) {
	t.Run("closure when links exist", func(t *testing.T) {
		ids := hierarchy.ScopeIDs("002", roster())
		assert.ElementsMatch(t, []string{"003", "004"}, ids)
	})

	t.Run("widens to everyone except self when no links", func(t *testing.T) {
		flat := []employee.Employee{
			{ID: "001"}, {ID: "002"}, {ID: "003"},
		}
		ids := hierarchy.ScopeIDs("002", flat)
		assert.ElementsMatch(t, []string{"001", "003"}, ids)
	})

	t.Run("leaf manager widens to all-but-self", func(t *testing.T) {
		ids := hierarchy.ScopeIDs("004", roster())
		assert.ElementsMatch(t, []string{"001", "002", "003", "005"}, ids)
	})
}
