package stats

// EmployeeStatistics is a derived snapshot over a set of employees.
// It is a pure function of the input set and is never persisted.
type EmployeeStatistics struct {
	TotalEmployees  int             `json:"total_employees"`
	ActiveEmployees int             `json:"active_employees"`
	OnLeave         int             `json:"on_leave"`
	Inactive        int             `json:"inactive"`
	AvgSalary       float64         `json:"avg_salary"`
	MinSalary       float64         `json:"min_salary"`
	MaxSalary       float64         `json:"max_salary"`
	TopPositions    []PositionCount `json:"top_positions"`
	Demographics    Demographics    `json:"demographics"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// Demographics holds category histograms. Categories absent from the input
// set are absent from the maps, not zero-filled.
type Demographics struct {
	Nationality map[string]int `json:"nationality"`
	Religion    map[string]int `json:"religion"`
	Gender      map[string]int `json:"gender"`
	Education   map[string]int `json:"education"`
}

// TodayAttendanceStats is the per-status breakdown for one calendar date.
// TotalEmployees is taken independently of the record set so that employees
// with no record for the day still show up as not checked in.
type TodayAttendanceStats struct {
	Total          int `json:"total"`
	Present        int `json:"present"`
	Late           int `json:"late"`
	Absent         int `json:"absent"`
	OnMedicalLeave int `json:"on_medical_leave"`
	OnLeave        int `json:"on_leave"`
	Holiday        int `json:"holiday"`
	NotCheckedIn   int `json:"not_checked_in"`
	TotalEmployees int `json:"total_employees"`
}

// DepartmentStatistics combines a department with its aggregate numbers.
type DepartmentStatistics struct {
	DeptCode           string             `json:"dept_code"`
	DeptName           string             `json:"dept_name"`
	EmployeeCount      int                `json:"employee_count"`
	SubDepartmentCount int64              `json:"sub_department_count"`
	IsSubDepartment    bool               `json:"is_sub_department"`
	Statistics         EmployeeStatistics `json:"statistics"`
}
