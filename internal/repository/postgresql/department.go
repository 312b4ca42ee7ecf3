package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepository{db: db}
}

const departmentColumns = `id, dept_code, dept_name, parent_dept_id, created_at, updated_at`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(&d.ID, &d.DeptCode, &d.DeptName, &d.ParentDeptID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func collectDepartments(rows pgx.Rows) ([]department.Department, error) {
	defer rows.Close()
	var out []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM departments ORDER BY dept_name
	`, departmentColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return collectDepartments(rows)
}

// GetWithEmployees returns only departments that have employees assigned.
func (r *departmentRepository) GetWithEmployees(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM departments d
		WHERE EXISTS (
			SELECT 1 FROM employees e WHERE e.department_code = d.dept_code
		)
		ORDER BY dept_name
	`, departmentColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list departments with employees: %w", err)
	}
	return collectDepartments(rows)
}

func (r *departmentRepository) GetByCode(ctx context.Context, deptCode string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM departments WHERE UPPER(dept_code) = UPPER($1)
	`, departmentColumns), deptCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by code: %w", err)
	}
	return d, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM departments WHERE id = $1
	`, departmentColumns), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}
	return d, nil
}

func (r *departmentRepository) Search(ctx context.Context, term string, limit int) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	pattern := "%" + term + "%"
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM departments
		WHERE dept_code ILIKE $1 OR dept_name ILIKE $1
		ORDER BY dept_name
		LIMIT $2
	`, departmentColumns), pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search departments: %w", err)
	}
	return collectDepartments(rows)
}

func (r *departmentRepository) CountChildren(ctx context.Context, parentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM departments WHERE parent_dept_id = $1
	`, parentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sub-departments: %w", err)
	}
	return count, nil
}

func (r *departmentRepository) ListCodes(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT dept_code FROM departments`)
	if err != nil {
		return nil, fmt.Errorf("failed to list department codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// BulkInsert inserts departments one statement at a time, skipping rows whose
// dept_code already exists. Seed volumes are small so a batch protocol is not
// worth the extra path.
func (r *departmentRepository) BulkInsert(ctx context.Context, departments []department.Department) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, d := range departments {
		tag, err := q.Exec(ctx, `
			INSERT INTO departments (dept_code, dept_name, parent_dept_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (dept_code) DO NOTHING
		`, d.DeptCode, d.DeptName, d.ParentDeptID)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert department %s: %w", d.DeptCode, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
