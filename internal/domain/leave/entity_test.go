package leave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/leave"
)

func TestNormalizeTypeList(t *testing.T) {
	list := []leave.LeaveType{
		{ID: "sick", Label: "ลาป่วย"},
		{ID: " SICK ", Label: "duplicate"},
		{ID: "", Label: "dropped"},
		{ID: "vacation", Label: "ลาพักร้อน"},
	}

	got := leave.NormalizeTypeList(list)
	assert.Len(t, got, 2)
	assert.Equal(t, "SICK", got[0].ID)
	assert.Equal(t, "ลาป่วย", got[0].Label)
	assert.Equal(t, "VACATION", got[1].ID)
}

func TestAppliesTo(t *testing.T) {
	both := leave.LeaveType{ApplicableTo: leave.ApplicableBoth}
	female := leave.LeaveType{ApplicableTo: leave.ApplicableFemale}

	assert.True(t, both.AppliesTo(employee.Male))
	assert.True(t, both.AppliesTo(employee.Female))
	assert.True(t, female.AppliesTo(employee.Female))
	assert.False(t, female.AppliesTo(employee.Male))
}

func TestTypesForGenderOrdering(t *testing.T) {
	list := []leave.LeaveType{
		{ID: "B", Order: 2, IsActive: true, ApplicableTo: leave.ApplicableBoth},
		{ID: "C", Order: 3, IsActive: false, ApplicableTo: leave.ApplicableBoth},
		{ID: "A", Order: 1, IsActive: true, ApplicableTo: leave.ApplicableBoth},
		{ID: "F", Order: 0, IsActive: true, ApplicableTo: leave.ApplicableFemale},
	}

	got := leave.TypesForGender(list, employee.Male)
	ids := make([]string, 0, len(got))
	for _, lt := range got {
		ids = append(ids, lt.ID)
	}
	// Inactive and gender-inapplicable types drop out; display order wins
	assert.Equal(t, []string{"A", "B"}, ids)
}

func TestSeedTypesCoverStandardIDs(t *testing.T) {
	seeded := leave.SeedTypes()
	byID := make(map[string]leave.LeaveType, len(seeded))
	for _, lt := range seeded {
		byID[lt.ID] = lt
	}

	assert.Equal(t, 30.0, byID[leave.TypeSick].DefaultQuota)
	assert.Equal(t, 12.0, byID[leave.TypeVacation].DefaultQuota)
	assert.Equal(t, leave.ApplicableFemale, byID[leave.TypeMaternity].ApplicableTo)
	assert.Equal(t, leave.ApplicableMale, byID[leave.TypeOrdination].ApplicableTo)
}
