package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, clock_in, clock_out, status,
	hours_worked, overtime_hours, location, notes, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut, &rec.Status,
		&rec.HoursWorked, &rec.OvertimeHours, &rec.Location, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	defer rows.Close()
	var out []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) GetForDate(ctx context.Context, date time.Time, filter attendance.DayFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.clock_in, ar.clock_out, ar.status,
			ar.hours_worked, ar.overtime_hours, ar.location, ar.notes, ar.created_at, ar.updated_at
		FROM attendance_records ar
		WHERE ar.date = $1
	`
	args := []interface{}{date}

	switch {
	case filter.EmployeeID != "":
		query += ` AND ar.employee_id = (SELECT id FROM employees WHERE UPPER(employee_id) = UPPER($2))`
		args = append(args, filter.EmployeeID)
	case filter.DeptCode != "":
		query += ` AND ar.employee_id IN (SELECT id FROM employees WHERE department_code = $2)`
		args = append(args, filter.DeptCode)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for date: %w", err)
	}
	return collectRecords(rows)
}

func (r *attendanceRepository) GetByEmployee(ctx context.Context, employeeDBID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
		LIMIT $2
	`, attendanceColumns), employeeDBID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	return collectRecords(rows)
}

func (r *attendanceRepository) GetLeaveByEmployee(ctx context.Context, employeeDBID string, limit int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE employee_id = $1 AND status = ANY($2)
		ORDER BY date DESC
		LIMIT $3
	`, attendanceColumns), employeeDBID, leaveStatusStrings(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave records: %w", err)
	}
	return collectRecords(rows)
}

func (r *attendanceRepository) GetForEmployeeOnDate(ctx context.Context, employeeDBID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`, attendanceColumns), employeeDBID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance for employee on date: %w", err)
	}
	return rec, nil
}

// BulkUpsert inserts records keyed on (employee_id, date), ignoring conflicts.
// Two clients racing through the seed can both reach this point; the conflict
// clause makes the duplicate insert a no-op instead of an error.
func (r *attendanceRepository) BulkUpsert(ctx context.Context, records []attendance.Record) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, rec := range records {
		tag, err := q.Exec(ctx, `
			INSERT INTO attendance_records (
				employee_id, date, clock_in, clock_out, status,
				hours_worked, overtime_hours, location, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (employee_id, date) DO NOTHING
		`,
			rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut, rec.Status,
			rec.HoursWorked, rec.OvertimeHours, rec.Location, rec.Notes,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to upsert attendance record: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func leaveStatusStrings() []string {
	out := make([]string, len(attendance.LeaveStatuses))
	for i, s := range attendance.LeaveStatuses {
		out[i] = string(s)
	}
	return out
}
