package leave

// SeedTypes is the standard company leave catalogue loaded into an empty
// datastore. Labels are Thai, matching the HR policy document.
func SeedTypes() []LeaveType {
	return []LeaveType{
		{ID: TypeSick, Label: "ลาป่วย", ApplicableTo: ApplicableBoth, DefaultQuota: 30, Order: 1, IsActive: true},
		{ID: TypeVacation, Label: "ลาพักร้อน", ApplicableTo: ApplicableBoth, DefaultQuota: 12, Order: 2, IsActive: true},
		{ID: TypePersonal, Label: "ลากิจ", ApplicableTo: ApplicableBoth, DefaultQuota: 3, Order: 3, IsActive: true},
		{ID: TypeMaternity, Label: "ลาคลอด", ApplicableTo: ApplicableFemale, DefaultQuota: 90, Order: 4, IsActive: true},
		{ID: TypeSterilization, Label: "ลาทำหมัน", ApplicableTo: ApplicableFemale, DefaultQuota: 999, Order: 5, IsActive: true},
		{ID: TypePaternity, Label: "ลาเลี้ยงบุตร (ชาย)", ApplicableTo: ApplicableMale, DefaultQuota: 15, Order: 6, IsActive: true},
		{ID: TypeOrdination, Label: "ลาบวช", ApplicableTo: ApplicableMale, DefaultQuota: 120, Order: 7, IsActive: true},
		{ID: TypeMilitary, Label: "ลาเกณฑ์ทหาร", ApplicableTo: ApplicableMale, DefaultQuota: 60, Order: 8, IsActive: true},
		{ID: TypeOther, Label: "ลาอื่นๆ", ApplicableTo: ApplicableBoth, DefaultQuota: 0, Order: 9, IsActive: true},
	}
}
