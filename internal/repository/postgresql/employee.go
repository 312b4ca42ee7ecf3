package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_id, name, department_code, position, grade, email, phone,
	join_date, nationality, religion, gender, native_status, education_level,
	salary, status, supervisor, work_location,
	emergency_contact_name, emergency_contact_relationship, emergency_contact_phone,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.DepartmentCode, &e.Position, &e.Grade, &e.Email, &e.Phone,
		&e.JoinDate, &e.Nationality, &e.Religion, &e.Gender, &e.NativeStatus, &e.EducationLevel,
		&e.Salary, &e.Status, &e.Supervisor, &e.WorkLocation,
		&e.Emergency.Name, &e.Emergency.Relationship, &e.Emergency.Phone,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()
	var out []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM employees ORDER BY name
	`, employeeColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return collectEmployees(rows)
}

func (r *employeeRepository) GetByDepartment(ctx context.Context, deptCode string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM employees WHERE department_code = $1 ORDER BY name
	`, employeeColumns), deptCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by department: %w", err)
	}
	return collectEmployees(rows)
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM employees WHERE UPPER(employee_id) = UPPER($1)
	`, employeeColumns), employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) Search(ctx context.Context, term string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	pattern := "%" + term + "%"
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE employee_id ILIKE $1 OR name ILIKE $1 OR email ILIKE $1 OR position ILIKE $1
		ORDER BY name
		LIMIT $2
	`, employeeColumns), pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	return collectEmployees(rows)
}

func (r *employeeRepository) Count(ctx context.Context, deptCode string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	var err error
	if deptCode == "" {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	} else {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department_code = $1`, deptCode).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *employeeRepository) ListCodes(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee codes: %w", err)
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

func (r *employeeRepository) ListIDRefs(ctx context.Context) ([]employee.IDRef, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, employee_id FROM employees ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee id refs: %w", err)
	}
	defer rows.Close()

	var refs []employee.IDRef
	for rows.Next() {
		var ref employee.IDRef
		if err := rows.Scan(&ref.ID, &ref.EmployeeID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *employeeRepository) BulkInsert(ctx context.Context, employees []employee.Employee) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, e := range employees {
		tag, err := q.Exec(ctx, `
			INSERT INTO employees (
				employee_id, name, department_code, position, grade, email, phone,
				join_date, nationality, religion, gender, native_status, education_level,
				salary, status, supervisor, work_location,
				emergency_contact_name, emergency_contact_relationship, emergency_contact_phone
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
			)
			ON CONFLICT (employee_id) DO NOTHING
		`,
			e.EmployeeID, e.Name, e.DepartmentCode, e.Position, e.Grade, e.Email, e.Phone,
			e.JoinDate, e.Nationality, e.Religion, e.Gender, e.NativeStatus, e.EducationLevel,
			e.Salary, e.Status, e.Supervisor, e.WorkLocation,
			e.Emergency.Name, e.Emergency.Relationship, e.Emergency.Phone,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert employee %s: %w", e.EmployeeID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
