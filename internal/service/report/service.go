package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	reportdomain "github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/export"
)

const defaultPeriod = "daily"

var validPeriods = map[string]bool{"daily": true, "weekly": true, "monthly": true}

type ReportServiceImpl struct {
	statsService   stats.Service
	departmentRepo department.Repository
	logger         *slog.Logger
	now            func() time.Time
}

func NewReportService(statsService stats.Service, departmentRepo department.Repository, logger *slog.Logger) reportdomain.Service {
	return &ReportServiceImpl{
		statsService:   statsService,
		departmentRepo: departmentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) AttendancePDF(ctx context.Context, deptCode, period string) ([]byte, error) {
	snapshot, err := s.snapshot(ctx, deptCode, period)
	if err != nil {
		return nil, err
	}
	return export.AttendancePDF(snapshot)
}

func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, deptCode, period string) ([]byte, error) {
	snapshot, err := s.snapshot(ctx, deptCode, period)
	if err != nil {
		return nil, err
	}
	return export.AttendanceXLSX(snapshot)
}

func (s *ReportServiceImpl) snapshot(ctx context.Context, deptCode, period string) (reportdomain.Snapshot, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = defaultPeriod
	}
	if !validPeriods[period] {
		return reportdomain.Snapshot{}, fmt.Errorf("%w: %q", reportdomain.ErrInvalidPeriod, period)
	}

	deptName := "All Departments"
	if deptCode != "" && deptCode != "all" {
		dept, err := s.departmentRepo.GetByCode(ctx, deptCode)
		if err != nil {
			return reportdomain.Snapshot{}, err
		}
		deptCode = dept.DeptCode
		deptName = dept.DeptName
	} else {
		deptCode = ""
	}

	now := s.now()
	today := s.statsService.TodayAttendance(ctx, now, deptCode, "")
	employees := s.statsService.EmployeeStatistics(ctx, deptCode)

	return reportdomain.Snapshot{
		Filter: reportdomain.Filter{
			DeptCode: deptCode,
			DeptName: deptName,
			Period:   period,
		},
		GeneratedAt:      now,
		Today:            today,
		Employees:        employees,
		ComplianceRate:   complianceRate(today),
		PerformanceScore: performanceScore(today),
	}, nil
}

// complianceRate is the share of the workforce accounted for today: present,
// late, on leave or on medical leave.
func complianceRate(t stats.TodayAttendanceStats) float64 {
	if t.TotalEmployees == 0 {
		return 0
	}
	accounted := t.Present + t.Late + t.OnLeave + t.OnMedicalLeave
	return math.Round(float64(accounted)/float64(t.TotalEmployees)*1000) / 10
}

// performanceScore weighs punctual presence full and late presence half,
// scaled 0-100.
func performanceScore(t stats.TodayAttendanceStats) int {
	if t.TotalEmployees == 0 {
		return 0
	}
	score := (float64(t.Present) + 0.5*float64(t.Late)) / float64(t.TotalEmployees) * 100
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
