package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

func sampleSnapshot() report.Snapshot {
	return report.Snapshot{
		Filter: report.Filter{
			DeptCode: "11D",
			DeptName: "Jabatan Perkhidmatan Komputer Negeri",
			Period:   "daily",
		},
		GeneratedAt: time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC),
		Today: stats.TodayAttendanceStats{
			Present: 70, Late: 10, Absent: 5, OnMedicalLeave: 3, OnLeave: 7,
			NotCheckedIn: 5, Total: 95, TotalEmployees: 100,
		},
		Employees: stats.EmployeeStatistics{
			TotalEmployees: 100,
			Demographics: stats.Demographics{
				Nationality: map[string]int{"Malaysian": 92, "Non-Malaysian": 8},
				Religion:    map[string]int{"Islam": 60, "Christian": 25},
			},
		},
		ComplianceRate:   90.0,
		PerformanceScore: 75,
	}
}

func TestMetricRows(t *testing.T) {
	rows := metricRows(sampleSnapshot())

	assert.Equal(t, [][2]string{
		{"Total Employees", "100"},
		{"Clocked In", "80"},
		{"On Leave", "7"},
		{"Medical Leave", "3"},
		{"Absent", "5"},
		{"Compliance Rate", "90.0%"},
		{"Performance Score", "75/100"},
	}, rows)
}

func TestAttendancePDF(t *testing.T) {
	out, err := AttendancePDF(sampleSnapshot())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestAttendanceXLSX(t *testing.T) {
	snap := sampleSnapshot()
	out, err := AttendanceXLSX(snap)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "CONFIDENTIAL - Attendance Summary", cell(sheetSummary, "A1"))
	assert.Equal(t, "Jabatan Perkhidmatan Komputer Negeri", cell(sheetSummary, "B3"))
	assert.Equal(t, "daily", cell(sheetSummary, "B4"))
	assert.Equal(t, "Metric", cell(sheetSummary, "A7"))
	assert.Equal(t, "Total Employees", cell(sheetSummary, "A8"))
	assert.Equal(t, "100", cell(sheetSummary, "B8"))
	assert.Equal(t, "Compliance Rate", cell(sheetSummary, "A13"))
	assert.Equal(t, "90.0%", cell(sheetSummary, "B13"))
	assert.Equal(t, "75/100", cell(sheetSummary, "B14"))

	assert.Equal(t, "Malaysian", cell(sheetDemographics, "A4"))
	assert.Equal(t, "92", cell(sheetDemographics, "B4"))

	// Same snapshot, same cell content.
	again, err := AttendanceXLSX(snap)
	require.NoError(t, err)
	f2, err := excelize.OpenReader(bytes.NewReader(again))
	require.NoError(t, err)
	defer f2.Close()
	rows1, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	rows2, err := f2.GetRows(sheetSummary)
	require.NoError(t, err)
	assert.Equal(t, rows1, rows2)
}
