package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
)

const (
	sheetSummary      = "Summary"
	sheetDemographics = "Demographics"
)

// AttendanceXLSX renders the snapshot as a two-sheet workbook: a summary
// sheet mirroring the PDF metric table and a demographics sheet.
func AttendanceXLSX(s report.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	summary := [][]any{
		{"CONFIDENTIAL - Attendance Summary"},
		{},
		{"Department", s.Filter.DeptName},
		{"Period", s.Filter.Period},
		{"Generated", s.GeneratedAt.Format("02/01/2006 15:04:05")},
		{},
		{"Metric", "Value"},
	}
	for _, row := range metricRows(s) {
		summary = append(summary, []any{row[0], row[1]})
	}
	summary = append(summary, []any{}, []any{"CONFIDENTIAL: Unauthorized disclosure prohibited"})
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetDemographics); err != nil {
		return nil, fmt.Errorf("add demographics sheet: %w", err)
	}
	demographics := [][]any{
		{"Demographics Analysis"},
		{},
		{"Nationality", "Count"},
		{string(employee.Malaysian), s.Employees.Demographics.Nationality[string(employee.Malaysian)]},
		{string(employee.NonMalaysian), s.Employees.Demographics.Nationality[string(employee.NonMalaysian)]},
		{},
		{"Religion", "Count"},
		{string(employee.ReligionIslam), s.Employees.Demographics.Religion[string(employee.ReligionIslam)]},
		{string(employee.ReligionChristian), s.Employees.Demographics.Religion[string(employee.ReligionChristian)]},
		{string(employee.ReligionBuddhist), s.Employees.Demographics.Religion[string(employee.ReligionBuddhist)]},
		{string(employee.ReligionHindu), s.Employees.Demographics.Religion[string(employee.ReligionHindu)]},
		{string(employee.ReligionOthers), s.Employees.Demographics.Religion[string(employee.ReligionOthers)]},
	}
	if err := writeRows(f, sheetDemographics, demographics); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
