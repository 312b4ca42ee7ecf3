package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
)

const (
	departmentSearchLimit = 10
	employeeSearchLimit   = 20

	// minEmployeeTermLength rejects 1-2 character name searches before they
	// reach the store; such terms substring-match most of the table.
	minEmployeeTermLength = 3
)

// Service resolves free-text or coded identifiers to canonical records.
// Exact natural-key matches always win over fuzzy matches.
type Service interface {
	ResolveDepartment(ctx context.Context, token string) (department.Department, error)
	// ResolveEmployee returns the best match plus the ranked candidate list.
	ResolveEmployee(ctx context.Context, token string) (employee.Employee, []employee.Employee, error)
	SearchDepartments(ctx context.Context, term string, limit int) ([]department.Department, error)
	SearchEmployees(ctx context.Context, term string, limit int) ([]employee.Employee, error)
	// DepartmentAncestry returns the chain from the department up to its root,
	// starting with the department itself.
	DepartmentAncestry(ctx context.Context, deptCode string) ([]department.Department, error)
}

type resolverImpl struct {
	departmentRepo department.Repository
	employeeRepo   employee.Repository
}

func NewResolver(departmentRepo department.Repository, employeeRepo employee.Repository) Service {
	return &resolverImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (r *resolverImpl) ResolveDepartment(ctx context.Context, token string) (department.Department, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return department.Department{}, department.ErrDepartmentNotFound
	}

	// Exact code match first
	dept, err := r.departmentRepo.GetByCode(ctx, token)
	if err == nil {
		return dept, nil
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.Department{}, err
	}

	candidates, err := r.departmentRepo.Search(ctx, token, departmentSearchLimit)
	if err != nil {
		return department.Department{}, err
	}
	if len(candidates) == 0 {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return candidates[0], nil
}

func (r *resolverImpl) ResolveEmployee(ctx context.Context, token string) (employee.Employee, []employee.Employee, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return employee.Employee{}, nil, employee.ErrEmployeeNotFound
	}

	// Exact employee-code match first
	emp, err := r.employeeRepo.GetByEmployeeID(ctx, token)
	if err == nil {
		return emp, []employee.Employee{emp}, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, nil, err
	}

	if len(token) < minEmployeeTermLength {
		return employee.Employee{}, nil, employee.ErrSearchTermTooShort
	}

	candidates, err := r.employeeRepo.Search(ctx, token, employeeSearchLimit)
	if err != nil {
		return employee.Employee{}, nil, err
	}
	if len(candidates) == 0 {
		return employee.Employee{}, nil, employee.ErrEmployeeNotFound
	}
	return candidates[0], candidates, nil
}

// DepartmentAncestry walks the parent chain with a visited set so a
// corrupted cyclic chain surfaces as ErrDepartmentCycle instead of looping.
func (r *resolverImpl) DepartmentAncestry(ctx context.Context, deptCode string) ([]department.Department, error) {
	dept, err := r.departmentRepo.GetByCode(ctx, deptCode)
	if err != nil {
		return nil, err
	}

	chain := []department.Department{dept}
	visited := map[string]bool{dept.ID: true}
	for dept.ParentDeptID != nil {
		parent, err := r.departmentRepo.GetByID(ctx, *dept.ParentDeptID)
		if err != nil {
			return nil, err
		}
		if visited[parent.ID] {
			return nil, department.ErrDepartmentCycle
		}
		visited[parent.ID] = true
		chain = append(chain, parent)
		dept = parent
	}
	return chain, nil
}

func (r *resolverImpl) SearchDepartments(ctx context.Context, term string, limit int) ([]department.Department, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = departmentSearchLimit
	}
	return r.departmentRepo.Search(ctx, term, limit)
}

func (r *resolverImpl) SearchEmployees(ctx context.Context, term string, limit int) ([]employee.Employee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if len(term) < minEmployeeTermLength {
		return nil, employee.ErrSearchTermTooShort
	}
	if limit <= 0 {
		limit = employeeSearchLimit
	}
	return r.employeeRepo.Search(ctx, term, limit)
}
