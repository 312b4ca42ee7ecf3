package fixtures

import "github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"

// Departments is the fixed department seed set. Codes are the short
// alphanumeric identifiers used across the state government systems.
func Departments() []department.Department {
	return []department.Department{
		{DeptCode: "11D", DeptName: "Jabatan Perkhidmatan Komputer Negeri"},
		{DeptCode: "33J", DeptName: "Jabatan Kerja Raya"},
		{DeptCode: "25B", DeptName: "Jabatan Perkhidmatan Awam Negeri"},
		{DeptCode: "280", DeptName: "Pejabat Setiausaha Kerajaan Negeri"},
		{DeptCode: "490", DeptName: "Jabatan Kewangan Negeri"},
		{DeptCode: "190", DeptName: "Jabatan Pertanian Negeri"},
	}
}
