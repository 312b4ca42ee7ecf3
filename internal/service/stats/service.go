package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"golang.org/x/sync/errgroup"
)

// TopPositionsLimit is the default N for the position frequency list.
const TopPositionsLimit = 5

type StatsServiceImpl struct {
	departmentRepo department.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	logger         *slog.Logger
}

func NewStatsService(
	departmentRepo department.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	logger *slog.Logger,
) stats.Service {
	return &StatsServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// EmployeeStatistics aggregates the department's employees, or the whole
// workforce when deptCode is empty. A store failure degrades to the
// zero-valued snapshot: one broken sub-query must not take down the answer
// that embeds it.
func (s *StatsServiceImpl) EmployeeStatistics(ctx context.Context, deptCode string) stats.EmployeeStatistics {
	var (
		employees []employee.Employee
		err       error
	)
	if deptCode == "" || deptCode == "all" {
		employees, err = s.employeeRepo.GetAll(ctx)
	} else {
		employees, err = s.employeeRepo.GetByDepartment(ctx, deptCode)
	}
	if err != nil {
		s.logger.Error("employee statistics fetch failed, returning zero snapshot",
			"dept_code", deptCode, "error", err)
		return AggregateEmployees(nil, TopPositionsLimit)
	}
	return AggregateEmployees(employees, TopPositionsLimit)
}

// TodayAttendance computes the per-status breakdown for one calendar date.
// The record fetch and the independent employee count run concurrently.
func (s *StatsServiceImpl) TodayAttendance(ctx context.Context, date time.Time, deptCode, employeeID string) stats.TodayAttendanceStats {
	if deptCode == "all" {
		deptCode = ""
	}
	if employeeID == "all" {
		employeeID = ""
	}

	var (
		records []attendance.Record
		total   int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.GetForDate(gCtx, date, attendance.DayFilter{
			DeptCode:   deptCode,
			EmployeeID: employeeID,
		})
		return err
	})

	g.Go(func() error {
		if employeeID != "" {
			total = 1
			return nil
		}
		var err error
		total, err = s.employeeRepo.Count(gCtx, deptCode)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("today attendance fetch failed, returning zero snapshot",
			"dept_code", deptCode, "employee_id", employeeID, "error", err)
		return AggregateToday(nil, 0)
	}

	return AggregateToday(records, int(total))
}

func (s *StatsServiceImpl) DepartmentStatistics(ctx context.Context, deptCode string) (stats.DepartmentStatistics, error) {
	dept, err := s.departmentRepo.GetByCode(ctx, deptCode)
	if err != nil {
		return stats.DepartmentStatistics{}, err
	}

	employees, err := s.employeeRepo.GetByDepartment(ctx, dept.DeptCode)
	if err != nil {
		s.logger.Error("department employees fetch failed, returning zero snapshot",
			"dept_code", deptCode, "error", err)
		employees = nil
	}

	subCount, err := s.departmentRepo.CountChildren(ctx, dept.ID)
	if err != nil {
		s.logger.Error("sub-department count failed", "dept_code", deptCode, "error", err)
		subCount = 0
	}

	return stats.DepartmentStatistics{
		DeptCode:           dept.DeptCode,
		DeptName:           dept.DeptName,
		EmployeeCount:      len(employees),
		SubDepartmentCount: subCount,
		IsSubDepartment:    dept.IsSubDepartment(),
		Statistics:         AggregateEmployees(employees, TopPositionsLimit),
	}, nil
}
