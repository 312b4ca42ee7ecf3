package report

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	reportdomain "github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

type stubStats struct {
	today     stats.TodayAttendanceStats
	employees stats.EmployeeStatistics
}

func (s *stubStats) EmployeeStatistics(context.Context, string) stats.EmployeeStatistics {
	return s.employees
}

func (s *stubStats) TodayAttendance(context.Context, time.Time, string, string) stats.TodayAttendanceStats {
	return s.today
}

func (s *stubStats) DepartmentStatistics(context.Context, string) (stats.DepartmentStatistics, error) {
	return stats.DepartmentStatistics{}, nil
}

type stubDeptRepo struct {
	dept department.Department
	err  error
}

func (s *stubDeptRepo) GetAll(context.Context) ([]department.Department, error) { return nil, nil }

func (s *stubDeptRepo) GetWithEmployees(context.Context) ([]department.Department, error) {
	return nil, nil
}

func (s *stubDeptRepo) GetByCode(context.Context, string) (department.Department, error) {
	return s.dept, s.err
}

func (s *stubDeptRepo) GetByID(context.Context, string) (department.Department, error) {
	return s.dept, s.err
}

func (s *stubDeptRepo) Search(context.Context, string, int) ([]department.Department, error) {
	return nil, nil
}

func (s *stubDeptRepo) CountChildren(context.Context, string) (int64, error) { return 0, nil }

func (s *stubDeptRepo) ListCodes(context.Context) ([]string, error) { return nil, nil }

func (s *stubDeptRepo) BulkInsert(context.Context, []department.Department) (int, error) {
	return 0, nil
}

var reportNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func newTestService(st *stubStats, deptRepo *stubDeptRepo) *ReportServiceImpl {
	return &ReportServiceImpl{
		statsService:   st,
		departmentRepo: deptRepo,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            func() time.Time { return reportNow },
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	st := &stubStats{today: stats.TodayAttendanceStats{
		Present: 70, Late: 10, Absent: 5, OnMedicalLeave: 3, OnLeave: 7,
		TotalEmployees: 100,
	}}

	t.Run("empty department means the whole workforce", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
		snap, err := s.snapshot(ctx, "", "daily")
		require.NoError(t, err)
		assert.Equal(t, "All Departments", snap.Filter.DeptName)
		assert.Empty(t, snap.Filter.DeptCode)
		assert.Equal(t, reportNow, snap.GeneratedAt)
	})

	t.Run("all is treated like empty", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
		snap, err := s.snapshot(ctx, "all", "daily")
		require.NoError(t, err)
		assert.Equal(t, "All Departments", snap.Filter.DeptName)
	})

	t.Run("named department is resolved", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{dept: department.Department{
			DeptCode: "11D", DeptName: "Jabatan Perkhidmatan Komputer Negeri",
		}})
		snap, err := s.snapshot(ctx, "11D", "weekly")
		require.NoError(t, err)
		assert.Equal(t, "11D", snap.Filter.DeptCode)
		assert.Equal(t, "Jabatan Perkhidmatan Komputer Negeri", snap.Filter.DeptName)
		assert.Equal(t, "weekly", snap.Filter.Period)
	})

	t.Run("unknown department surfaces the lookup error", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
		_, err := s.snapshot(ctx, "99Z", "daily")
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})

	t.Run("blank period defaults to daily", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
		snap, err := s.snapshot(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "daily", snap.Filter.Period)
	})

	t.Run("unknown period is rejected", func(t *testing.T) {
		s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
		_, err := s.snapshot(ctx, "", "yearly")
		assert.ErrorIs(t, err, reportdomain.ErrInvalidPeriod)
	})
}

func TestComplianceRate(t *testing.T) {
	assert.Equal(t, 90.0, complianceRate(stats.TodayAttendanceStats{
		Present: 70, Late: 10, OnLeave: 7, OnMedicalLeave: 3, TotalEmployees: 100,
	}))
	assert.Equal(t, 0.0, complianceRate(stats.TodayAttendanceStats{}))
	// One decimal place, not more.
	assert.Equal(t, 66.7, complianceRate(stats.TodayAttendanceStats{
		Present: 2, TotalEmployees: 3,
	}))
}

func TestPerformanceScore(t *testing.T) {
	// Late counts half.
	assert.Equal(t, 75, performanceScore(stats.TodayAttendanceStats{
		Present: 70, Late: 10, TotalEmployees: 100,
	}))
	assert.Equal(t, 0, performanceScore(stats.TodayAttendanceStats{}))
	assert.Equal(t, 100, performanceScore(stats.TodayAttendanceStats{
		Present: 100, Late: 20, TotalEmployees: 100,
	}))
}

func TestExportBytes(t *testing.T) {
	st := &stubStats{today: stats.TodayAttendanceStats{
		Present: 70, Late: 10, Absent: 5, OnMedicalLeave: 3, OnLeave: 7,
		TotalEmployees: 100,
	}}
	s := newTestService(st, &stubDeptRepo{err: department.ErrDepartmentNotFound})
	ctx := context.Background()

	pdf, err := s.AttendancePDF(ctx, "", "daily")
	require.NoError(t, err)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	xlsx, err := s.AttendanceXLSX(ctx, "", "daily")
	require.NoError(t, err)
	assert.True(t, len(xlsx) > 2 && string(xlsx[:2]) == "PK")
}
