package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
)

type stubDepartmentRepo struct {
	departments []department.Department
	calls       int
}

func (s *stubDepartmentRepo) GetAll(context.Context) ([]department.Department, error) {
	s.calls++
	return s.departments, nil
}

func (s *stubDepartmentRepo) GetWithEmployees(context.Context) ([]department.Department, error) {
	s.calls++
	return s.departments, nil
}

func (s *stubDepartmentRepo) GetByCode(_ context.Context, code string) (department.Department, error) {
	s.calls++
	for _, d := range s.departments {
		if strings.EqualFold(d.DeptCode, code) {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *stubDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	s.calls++
	for _, d := range s.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *stubDepartmentRepo) Search(_ context.Context, term string, limit int) ([]department.Department, error) {
	s.calls++
	var out []department.Department
	for _, d := range s.departments {
		if strings.Contains(strings.ToLower(d.DeptName), strings.ToLower(term)) {
			out = append(out, d)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubDepartmentRepo) CountChildren(context.Context, string) (int64, error) { return 0, nil }

func (s *stubDepartmentRepo) ListCodes(context.Context) ([]string, error) { return nil, nil }

func (s *stubDepartmentRepo) BulkInsert(context.Context, []department.Department) (int, error) {
	return 0, nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
	calls     int
}

func (s *stubEmployeeRepo) GetAll(context.Context) ([]employee.Employee, error) {
	s.calls++
	return s.employees, nil
}

func (s *stubEmployeeRepo) GetByDepartment(context.Context, string) ([]employee.Employee, error) {
	s.calls++
	return s.employees, nil
}

func (s *stubEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	s.calls++
	for _, e := range s.employees {
		if strings.EqualFold(e.EmployeeID, employeeID) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Search(_ context.Context, term string, limit int) ([]employee.Employee, error) {
	s.calls++
	var out []employee.Employee
	for _, e := range s.employees {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(term)) {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) Count(context.Context, string) (int64, error) {
	return int64(len(s.employees)), nil
}

func (s *stubEmployeeRepo) ListCodes(context.Context) ([]string, error) { return nil, nil }

func (s *stubEmployeeRepo) ListIDRefs(context.Context) ([]employee.IDRef, error) { return nil, nil }

func (s *stubEmployeeRepo) BulkInsert(context.Context, []employee.Employee) (int, error) {
	return 0, nil
}

func TestResolveDepartment(t *testing.T) {
	parentID := "d-root"
	deptRepo := &stubDepartmentRepo{departments: []department.Department{
		{ID: "d-root", DeptCode: "11D", DeptName: "Jabatan Perkhidmatan Komputer Negeri"},
		{ID: "d-sub", DeptCode: "11D-2", DeptName: "Unit Rangkaian", ParentDeptID: &parentID},
		{ID: "d-other", DeptCode: "33J", DeptName: "Jabatan Kerja Raya"},
	}}
	r := NewResolver(deptRepo, &stubEmployeeRepo{})
	ctx := context.Background()

	t.Run("exact code match wins over fuzzy", func(t *testing.T) {
		dept, err := r.ResolveDepartment(ctx, "11d")
		require.NoError(t, err)
		assert.Equal(t, "11D", dept.DeptCode)
	})

	t.Run("falls back to name search", func(t *testing.T) {
		dept, err := r.ResolveDepartment(ctx, "kerja raya")
		require.NoError(t, err)
		assert.Equal(t, "33J", dept.DeptCode)
	})

	t.Run("empty token skips the store", func(t *testing.T) {
		before := deptRepo.calls
		_, err := r.ResolveDepartment(ctx, "   ")
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
		assert.Equal(t, before, deptRepo.calls)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := r.ResolveDepartment(ctx, "nonexistent")
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}

func TestResolveEmployee(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeID: "SG000001", Name: "Crystal Wong"},
		{ID: "e2", EmployeeID: "SG000002", Name: "Ahmad Bin Abdullah"},
		{ID: "e3", EmployeeID: "SG000003", Name: "Ahmad Faizal"},
	}}
	r := NewResolver(&stubDepartmentRepo{}, empRepo)
	ctx := context.Background()

	t.Run("exact code match is case-insensitive", func(t *testing.T) {
		emp, candidates, err := r.ResolveEmployee(ctx, "sg000001")
		require.NoError(t, err)
		assert.Equal(t, "Crystal Wong", emp.Name)
		assert.Len(t, candidates, 1)
	})

	t.Run("fuzzy match returns first candidate and the full list", func(t *testing.T) {
		emp, candidates, err := r.ResolveEmployee(ctx, "ahmad")
		require.NoError(t, err)
		assert.Equal(t, "SG000002", emp.EmployeeID)
		assert.Len(t, candidates, 2)
	})

	t.Run("short term is rejected before search", func(t *testing.T) {
		_, _, err := r.ResolveEmployee(ctx, "ah")
		assert.ErrorIs(t, err, employee.ErrSearchTermTooShort)
	})

	t.Run("empty token skips the store", func(t *testing.T) {
		before := empRepo.calls
		_, _, err := r.ResolveEmployee(ctx, "")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
		assert.Equal(t, before, empRepo.calls)
	})

	t.Run("no match", func(t *testing.T) {
		_, _, err := r.ResolveEmployee(ctx, "zulkifli")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestSearchEmployees(t *testing.T) {
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "e1", EmployeeID: "SG000001", Name: "Crystal Wong"},
	}}
	r := NewResolver(&stubDepartmentRepo{}, empRepo)
	ctx := context.Background()

	t.Run("short term rejected", func(t *testing.T) {
		_, err := r.SearchEmployees(ctx, "cr", 20)
		assert.ErrorIs(t, err, employee.ErrSearchTermTooShort)
	})

	t.Run("empty term returns nothing", func(t *testing.T) {
		results, err := r.SearchEmployees(ctx, "  ", 20)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("finds by name fragment", func(t *testing.T) {
		results, err := r.SearchEmployees(ctx, "crystal", 20)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "SG000001", results[0].EmployeeID)
	})
}

func TestDepartmentAncestry(t *testing.T) {
	t.Run("walks to the root, department first", func(t *testing.T) {
		rootID, midID := "d-root", "d-mid"
		deptRepo := &stubDepartmentRepo{departments: []department.Department{
			{ID: "d-root", DeptCode: "11D", DeptName: "Root"},
			{ID: "d-mid", DeptCode: "11D-1", DeptName: "Mid", ParentDeptID: &rootID},
			{ID: "d-leaf", DeptCode: "11D-1-2", DeptName: "Leaf", ParentDeptID: &midID},
		}}
		r := NewResolver(deptRepo, &stubEmployeeRepo{})

		chain, err := r.DepartmentAncestry(context.Background(), "11D-1-2")
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, "11D-1-2", chain[0].DeptCode)
		assert.Equal(t, "11D-1", chain[1].DeptCode)
		assert.Equal(t, "11D", chain[2].DeptCode)
	})

	t.Run("cyclic parent chain is detected", func(t *testing.T) {
		aID, bID := "d-a", "d-b"
		deptRepo := &stubDepartmentRepo{departments: []department.Department{
			{ID: "d-a", DeptCode: "10A", ParentDeptID: &bID},
			{ID: "d-b", DeptCode: "10B", ParentDeptID: &aID},
		}}
		r := NewResolver(deptRepo, &stubEmployeeRepo{})

		_, err := r.DepartmentAncestry(context.Background(), "10A")
		assert.ErrorIs(t, err, department.ErrDepartmentCycle)
	})

	t.Run("unknown department", func(t *testing.T) {
		r := NewResolver(&stubDepartmentRepo{}, &stubEmployeeRepo{})
		_, err := r.DepartmentAncestry(context.Background(), "99Z")
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}
