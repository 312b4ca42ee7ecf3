package report

import (
	"context"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

// Filter is the dashboard selection a report is scoped to.
type Filter struct {
	DeptCode string
	DeptName string // "All Departments" when DeptCode is empty
	Period   string // daily, weekly or monthly
}

// Snapshot is the fully materialized input to the exporters. Exports are
// deterministic functions of a snapshot; GeneratedAt is the only clock read.
type Snapshot struct {
	Filter      Filter
	GeneratedAt time.Time
	Today       stats.TodayAttendanceStats
	Employees   stats.EmployeeStatistics

	// ComplianceRate is the share of the workforce accounted for today
	// (checked in, on leave or on medical leave), one decimal place.
	ComplianceRate float64
	// PerformanceScore weighs on-time presence against late arrivals,
	// scaled 0-100.
	PerformanceScore int
}

type Service interface {
	AttendancePDF(ctx context.Context, deptCode, period string) ([]byte, error)
	AttendanceXLSX(ctx context.Context, deptCode, period string) ([]byte, error)
}
