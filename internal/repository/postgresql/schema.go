package postgresql

import (
	"context"
	"fmt"

	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
)

// EnsureSchema creates the tables the service expects. All statements are
// idempotent so repeated startups are safe.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			dept_code TEXT NOT NULL UNIQUE,
			dept_name TEXT NOT NULL,
			parent_dept_id UUID REFERENCES departments(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			department_code TEXT NOT NULL,
			position TEXT NOT NULL,
			grade TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			join_date DATE NOT NULL,
			nationality TEXT NOT NULL,
			religion TEXT NOT NULL,
			gender TEXT NOT NULL,
			native_status TEXT NOT NULL,
			education_level TEXT NOT NULL,
			salary NUMERIC NOT NULL,
			status TEXT NOT NULL,
			supervisor TEXT NOT NULL,
			work_location TEXT NOT NULL,
			emergency_contact_name TEXT NOT NULL DEFAULT '',
			emergency_contact_relationship TEXT NOT NULL DEFAULT '',
			emergency_contact_phone TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id),
			date DATE NOT NULL,
			clock_in TEXT,
			clock_out TEXT,
			status TEXT NOT NULL,
			hours_worked NUMERIC NOT NULL DEFAULT 0,
			overtime_hours NUMERIC NOT NULL DEFAULT 0,
			location TEXT NOT NULL DEFAULT '',
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (employee_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records(date)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_department_code ON employees(department_code)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
