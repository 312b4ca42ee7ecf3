// Package seed loads the fixed demo dataset into an empty store exactly
// once per deployment, gated by a persisted flag.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/fixtures"
)

// State of the one-shot load.
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Phase names, also surfaced to callers when a phase fails.
const (
	PhaseDepartments = "departments"
	PhaseEmployees   = "employees"
	PhaseAttendance  = "attendance"
)

// attendanceEmployeeLimit bounds generated history to the first employees by
// code order; the demo dataset does not need records for the whole roster.
const attendanceEmployeeLimit = 20

// Status is the externally visible snapshot of the runner.
type Status struct {
	State       State     `json:"state"`
	FailedPhase string    `json:"failed_phase,omitempty"`
	Error       string    `json:"error,omitempty"`
	Inserted    Inserted  `json:"inserted"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}

// Inserted counts rows actually written per phase. Re-runs over an already
// seeded store report zeros.
type Inserted struct {
	Departments int `json:"departments"`
	Employees   int `json:"employees"`
	Attendance  int `json:"attendance"`
}

type Runner struct {
	departmentRepo department.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	store          settings.Store
	logger         *slog.Logger
	now            func() time.Time

	mu     sync.Mutex
	status Status
}

func NewRunner(
	departmentRepo department.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	store settings.Store,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		store:          store,
		logger:         logger,
		now:            time.Now,
		status:         Status{State: StatePending},
	}
}

// Status returns the current snapshot.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Seeded reports whether the completion flag is set.
func (r *Runner) Seeded(ctx context.Context) bool {
	v, err := r.store.Get(ctx, settings.KeyMigrated)
	return err == nil && v == "true"
}

// Run executes the three phases in order unless the flag says the store is
// already seeded. It is safe to call again after a failure; each phase only
// inserts what is missing.
func (r *Runner) Run(ctx context.Context) Status {
	if r.Seeded(ctx) {
		r.setState(func(st *Status) {
			st.State = StateCompleted
		})
		return r.Status()
	}
	return r.run(ctx)
}

// Retry clears the flag and restarts the whole sequence from scratch.
func (r *Runner) Retry(ctx context.Context) Status {
	if err := r.store.Delete(ctx, settings.KeyMigrated); err != nil {
		r.logger.Error("clearing seed flag failed", "error", err)
		r.setState(func(st *Status) {
			st.State = StateFailed
			st.Error = err.Error()
		})
		return r.Status()
	}
	return r.run(ctx)
}

func (r *Runner) run(ctx context.Context) Status {
	r.setState(func(st *Status) {
		*st = Status{State: StateRunning}
	})
	r.logger.Info("seeding started")

	phases := []struct {
		name string
		run  func(context.Context) (int, error)
	}{
		{PhaseDepartments, r.seedDepartments},
		{PhaseEmployees, r.seedEmployees},
		{PhaseAttendance, r.seedAttendance},
	}

	for _, phase := range phases {
		inserted, err := phase.run(ctx)
		if err != nil {
			r.logger.Error("seed phase failed", "phase", phase.name, "error", err)
			r.setState(func(st *Status) {
				st.State = StateFailed
				st.FailedPhase = phase.name
				st.Error = err.Error()
			})
			return r.Status()
		}
		r.logger.Info("seed phase completed", "phase", phase.name, "inserted", inserted)
		r.setState(func(st *Status) {
			switch phase.name {
			case PhaseDepartments:
				st.Inserted.Departments = inserted
			case PhaseEmployees:
				st.Inserted.Employees = inserted
			case PhaseAttendance:
				st.Inserted.Attendance = inserted
			}
		})
	}

	if err := r.store.Set(ctx, settings.KeyMigrated, "true"); err != nil {
		r.logger.Error("persisting seed flag failed", "error", err)
		r.setState(func(st *Status) {
			st.State = StateFailed
			st.Error = err.Error()
		})
		return r.Status()
	}

	r.setState(func(st *Status) {
		st.State = StateCompleted
		st.CompletedAt = r.now()
	})
	r.logger.Info("seeding completed")
	return r.Status()
}

func (r *Runner) seedDepartments(ctx context.Context) (int, error) {
	existing, err := r.departmentRepo.ListCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list department codes: %w", err)
	}
	known := toSet(existing)

	var missing []department.Department
	for _, d := range fixtures.Departments() {
		if !known[d.DeptCode] {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	inserted, err := r.departmentRepo.BulkInsert(ctx, missing)
	if err != nil {
		return 0, fmt.Errorf("insert departments: %w", err)
	}
	return inserted, nil
}

func (r *Runner) seedEmployees(ctx context.Context) (int, error) {
	existing, err := r.employeeRepo.ListCodes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list employee codes: %w", err)
	}
	known := toSet(existing)

	var missing []employee.Employee
	for _, e := range fixtures.Employees() {
		if !known[e.EmployeeID] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	inserted, err := r.employeeRepo.BulkInsert(ctx, missing)
	if err != nil {
		return 0, fmt.Errorf("insert employees: %w", err)
	}
	return inserted, nil
}

func (r *Runner) seedAttendance(ctx context.Context) (int, error) {
	refs, err := r.employeeRepo.ListIDRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list employee ids: %w", err)
	}
	if len(refs) == 0 {
		return 0, fmt.Errorf("no employees in store")
	}
	if len(refs) > attendanceEmployeeLimit {
		refs = refs[:attendanceEmployeeLimit]
	}

	end := r.now()
	var records []attendance.Record
	for _, ref := range refs {
		for _, rec := range fixtures.AttendanceFor(ref.EmployeeID, fixtures.AttendanceHistoryDays, end) {
			rec.EmployeeID = ref.ID
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return 0, nil
	}

	inserted, err := r.attendanceRepo.BulkUpsert(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("insert attendance records: %w", err)
	}
	return inserted, nil
}

func (r *Runner) setState(mutate func(*Status)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mutate(&r.status)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
