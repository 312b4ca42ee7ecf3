// Package export renders report snapshots into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
)

// AttendancePDF renders the snapshot as a single-page A4 document with a
// title block, a metric/value table and a confidentiality footer.
func AttendancePDF(s report.Snapshot) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Agency watermark behind the content.
	pdf.SetFont("Arial", "B", 60)
	pdf.SetTextColor(200, 200, 200)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 150)
	pdf.Text(80, 155, "JPKN")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(20, 15)
	pdf.Cell(0, 10, "CONFIDENTIAL - Attendance Report")

	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(20, 30)
	pdf.Cell(0, 8, "Department: "+s.Filter.DeptName)
	pdf.SetXY(20, 38)
	pdf.Cell(0, 8, "Period: "+s.Filter.Period)
	pdf.SetXY(20, 46)
	pdf.Cell(0, 8, "Generated: "+s.GeneratedAt.Format("02/01/2006 15:04:05"))

	pdf.SetXY(20, 62)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(85, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(85, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range metricRows(s) {
		pdf.SetX(20)
		pdf.CellFormat(85, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(85, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetXY(20, 275)
	pdf.Cell(0, 5, "CONFIDENTIAL: This document contains sensitive government information.")
	pdf.SetXY(20, 282)
	pdf.Cell(0, 5, "Unauthorized disclosure is prohibited under the Official Secrets Act.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// metricRows is the table body shared by both export formats.
func metricRows(s report.Snapshot) [][2]string {
	checkedIn := s.Today.Present + s.Today.Late
	return [][2]string{
		{"Total Employees", fmt.Sprintf("%d", s.Today.TotalEmployees)},
		{"Clocked In", fmt.Sprintf("%d", checkedIn)},
		{"On Leave", fmt.Sprintf("%d", s.Today.OnLeave)},
		{"Medical Leave", fmt.Sprintf("%d", s.Today.OnMedicalLeave)},
		{"Absent", fmt.Sprintf("%d", s.Today.Absent)},
		{"Compliance Rate", fmt.Sprintf("%.1f%%", s.ComplianceRate)},
		{"Performance Score", fmt.Sprintf("%d/100", s.PerformanceScore)},
	}
}
