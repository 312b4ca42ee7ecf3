package department

import "time"

type Department struct {
	ID           string
	DeptCode     string
	DeptName     string
	ParentDeptID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSubDepartment reports whether the department sits under a parent unit.
func (d Department) IsSubDepartment() bool {
	return d.ParentDeptID != nil
}
