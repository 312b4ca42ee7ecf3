package department

// Response is the wire shape for a department.
type Response struct {
	ID              string  `json:"id"`
	DeptCode        string  `json:"dept_code"`
	DeptName        string  `json:"dept_name"`
	ParentDeptID    *string `json:"parent_dept_id,omitempty"`
	IsSubDepartment bool    `json:"is_sub_department"`
}

func ToResponse(d Department) Response {
	return Response{
		ID:              d.ID,
		DeptCode:        d.DeptCode,
		DeptName:        d.DeptName,
		ParentDeptID:    d.ParentDeptID,
		IsSubDepartment: d.IsSubDepartment(),
	}
}

func ToResponseList(departments []Department) []Response {
	out := make([]Response, len(departments))
	for i, d := range departments {
		out[i] = ToResponse(d)
	}
	return out
}
