package chat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
)

// The formatter is pure: data in, markdown text out. No store access and no
// clock reads happen here; callers pass resolved entities and snapshots.

// Percent renders (numerator/denominator)*100 with one decimal place.
// A zero denominator yields "0.0%".
func Percent(numerator, denominator int) string {
	if denominator == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(numerator)/float64(denominator)*100)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("RM%s", groupThousands(int64(v)))
}

func groupThousands(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

func formatLongDate(t time.Time) string {
	return t.Format("Monday, 2 January 2006")
}

func formatShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatDepartmentList(departments []department.Department, shown int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Department List** (showing first %d of %d departments with employees):\n\n", shown, len(departments))
	for i, d := range departments {
		if i >= shown {
			break
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", d.DeptCode, d.DeptName)
	}
	b.WriteString("\n*Only departments with assigned employees are listed. Use the department filter to select one for more details.*")
	return b.String()
}

func formatDepartmentDetail(d stats.DepartmentStatistics) string {
	deptType := "Main department"
	if d.IsSubDepartment {
		deptType = "Sub-department"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", d.DeptName)
	fmt.Fprintf(&b, "- **Code**: %s\n", d.DeptCode)
	fmt.Fprintf(&b, "- **Employees**: %d\n", d.EmployeeCount)
	fmt.Fprintf(&b, "- **Type**: %s\n", deptType)
	if d.SubDepartmentCount > 0 {
		fmt.Fprintf(&b, "- **Sub-departments**: %d\n", d.SubDepartmentCount)
	}
	b.WriteString("\n**Employee Breakdown:**\n")
	fmt.Fprintf(&b, "- Active: %d\n", d.Statistics.ActiveEmployees)
	fmt.Fprintf(&b, "- On Leave: %d\n", d.Statistics.OnLeave)
	fmt.Fprintf(&b, "- Inactive: %d\n", d.Statistics.Inactive)
	b.WriteString("\n**Top Positions:**\n")
	if len(d.Statistics.TopPositions) == 0 {
		b.WriteString("No data\n")
	}
	for _, p := range d.Statistics.TopPositions {
		fmt.Fprintf(&b, "- %s: %d employees\n", p.Position, p.Count)
	}
	b.WriteString("\n*Select this department in the filter for detailed attendance data.*")
	return b.String()
}

func formatDepartmentOverview(d department.Department, st stats.EmployeeStatistics) string {
	deptType := "Main department"
	if d.IsSubDepartment() {
		deptType = "Sub-department"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", d.DeptName)
	fmt.Fprintf(&b, "- **Code**: %s\n", d.DeptCode)
	fmt.Fprintf(&b, "- **Total Employees**: %d\n", st.TotalEmployees)
	fmt.Fprintf(&b, "- **Active Employees**: %d\n", st.ActiveEmployees)
	fmt.Fprintf(&b, "- **Average Salary**: %s\n", formatMoney(st.AvgSalary))
	fmt.Fprintf(&b, "- **Type**: %s\n\n", deptType)
	b.WriteString("**Demographics:**\n")
	fmt.Fprintf(&b, "- Malaysian: %d\n", st.Demographics.Nationality[string(employee.Malaysian)])
	fmt.Fprintf(&b, "- Male: %d\n", st.Demographics.Gender[string(employee.Male)])
	fmt.Fprintf(&b, "- Female: %d\n", st.Demographics.Gender[string(employee.Female)])
	fmt.Fprintf(&b, "- Degree Holders: %d", st.Demographics.Education[string(employee.EducationDegree)])
	return b.String()
}

func formatEmployeeProfile(e employee.Employee, deptName string, now time.Time) string {
	if deptName == "" {
		deptName = e.DepartmentCode
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", e.Name)
	b.WriteString("**Basic Information:**\n")
	fmt.Fprintf(&b, "- **Employee ID**: %s\n", e.EmployeeID)
	fmt.Fprintf(&b, "- **Department**: %s\n", deptName)
	fmt.Fprintf(&b, "- **Position**: %s\n", e.Position)
	fmt.Fprintf(&b, "- **Grade**: %s\n", e.Grade)
	fmt.Fprintf(&b, "- **Status**: %s\n", e.Status)
	fmt.Fprintf(&b, "- **Years of Service**: %d years\n\n", e.YearsOfService(now))
	b.WriteString("**Personal Details:**\n")
	fmt.Fprintf(&b, "- **Gender**: %s\n", e.Gender)
	fmt.Fprintf(&b, "- **Nationality**: %s\n", e.Nationality)
	fmt.Fprintf(&b, "- **Religion**: %s\n", e.Religion)
	fmt.Fprintf(&b, "- **Education**: %s\n", e.EducationLevel)
	fmt.Fprintf(&b, "- **Native Status**: %s\n\n", e.NativeStatus)
	b.WriteString("**Work Information:**\n")
	fmt.Fprintf(&b, "- **Salary**: %s\n", formatMoney(e.Salary))
	fmt.Fprintf(&b, "- **Work Location**: %s\n", e.WorkLocation)
	fmt.Fprintf(&b, "- **Supervisor**: %s\n", e.Supervisor)
	fmt.Fprintf(&b, "- **Join Date**: %s\n\n", formatShortDate(e.JoinDate))
	b.WriteString("**Contact Information:**\n")
	fmt.Fprintf(&b, "- **Email**: %s\n", e.Email)
	fmt.Fprintf(&b, "- **Phone**: %s\n", e.Phone)
	fmt.Fprintf(&b, "- **Emergency Contact**: %s (%s) - %s\n\n",
		e.Emergency.Name, e.Emergency.Relationship, e.Emergency.Phone)
	b.WriteString("*Select this employee in the filter for detailed attendance records.*")
	return b.String()
}

func formatEmployeeOverview(totalEmployees, selectionSize int, st stats.EmployeeStatistics) string {
	var b strings.Builder
	b.WriteString("**Employee Overview**\n\n")
	b.WriteString("**Current Selection:**\n")
	fmt.Fprintf(&b, "- **Total Employees**: %s\n", groupThousands(int64(totalEmployees)))
	fmt.Fprintf(&b, "- **Department Employees**: %d\n", selectionSize)
	fmt.Fprintf(&b, "- **Active Employees**: %d\n", st.ActiveEmployees)
	fmt.Fprintf(&b, "- **Average Salary**: %s\n\n", formatMoney(st.AvgSalary))
	b.WriteString("**Top Positions:**\n")
	for i, p := range st.TopPositions {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d employees\n", p.Position, p.Count)
	}
	b.WriteString("\n**Demographics:**\n")
	fmt.Fprintf(&b, "- Malaysian: %d\n", st.Demographics.Nationality[string(employee.Malaysian)])
	fmt.Fprintf(&b, "- Degree Holders: %d\n\n", st.Demographics.Education[string(employee.EducationDegree)])
	b.WriteString("*Use the employee filter or search by name/ID for specific employee details.*")
	return b.String()
}

// salaryRange buckets used by the salary analysis template.
var salaryRanges = []struct {
	label string
	min   float64
	max   float64 // exclusive; <0 means unbounded
}{
	{"Below RM3,000", 0, 3000},
	{"RM3,000 - RM5,000", 3000, 5000},
	{"RM5,000 - RM8,000", 5000, 8000},
	{"Above RM8,000", 8000, -1},
}

func formatSalaryAnalysis(st stats.EmployeeStatistics, salaries []float64) string {
	var b strings.Builder
	b.WriteString("**Salary Analysis**\n\n")
	b.WriteString("**Salary Statistics:**\n")
	fmt.Fprintf(&b, "- **Average Salary**: %s\n", formatMoney(st.AvgSalary))
	fmt.Fprintf(&b, "- **Minimum Salary**: %s\n", formatMoney(st.MinSalary))
	fmt.Fprintf(&b, "- **Maximum Salary**: %s\n\n", formatMoney(st.MaxSalary))
	b.WriteString("**Salary Distribution:**\n")
	for _, r := range salaryRanges {
		count := 0
		for _, s := range salaries {
			if s >= r.min && (r.max < 0 || s < r.max) {
				count++
			}
		}
		fmt.Fprintf(&b, "- %s: %d employees\n", r.label, count)
	}
	b.WriteString("\n*Salary data is based on current department selection.*")
	return b.String()
}

type gradeCount struct {
	Grade string
	Count int
}

func countGrades(employees []employee.Employee) []gradeCount {
	counts := make(map[string]int)
	order := make(map[string]int)
	for i, e := range employees {
		if _, seen := order[e.Grade]; !seen {
			order[e.Grade] = i
		}
		counts[e.Grade]++
	}
	out := make([]gradeCount, 0, len(counts))
	for g, c := range counts {
		out = append(out, gradeCount{Grade: g, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return order[out[i].Grade] < order[out[j].Grade]
	})
	return out
}

func formatPositionAnalysis(st stats.EmployeeStatistics, grades []gradeCount) string {
	var b strings.Builder
	b.WriteString("**Position Analysis**\n\n")
	b.WriteString("**Most Common Positions:**\n")
	for _, p := range st.TopPositions {
		fmt.Fprintf(&b, "- **%s**: %d employees\n", p.Position, p.Count)
	}
	b.WriteString("\n**Grade Distribution:**\n")
	for i, g := range grades {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d employees\n", g.Grade, g.Count)
	}
	b.WriteString("\n*Data based on current department selection.*")
	return b.String()
}

func formatDemographics(st stats.EmployeeStatistics) string {
	var b strings.Builder
	b.WriteString("**Demographics Analysis**\n\n")
	b.WriteString("**Nationality:**\n")
	writeHistogram(&b, st.Demographics.Nationality)
	b.WriteString("\n**Religion:**\n")
	writeHistogram(&b, st.Demographics.Religion)
	b.WriteString("\n**Gender:**\n")
	writeHistogram(&b, st.Demographics.Gender)
	b.WriteString("\n**Education Level:**\n")
	writeHistogram(&b, st.Demographics.Education)
	return b.String()
}

// writeHistogram renders categories in sorted order so output is
// deterministic across runs.
func writeHistogram(b *strings.Builder, histogram map[string]int) {
	keys := make([]string, 0, len(histogram))
	for k := range histogram {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d employees\n", k, histogram[k])
	}
}

// attendanceMetric identifies one targeted "how many" answer.
type attendanceMetric int

const (
	metricNotOnMedicalLeave attendanceMetric = iota
	metricMedicalLeave
	metricAbsent
	metricLate
	metricCheckedIn
	metricPresent
	metricOnLeave
)

func formatHowMany(metric attendanceMetric, st stats.TodayAttendanceStats, contextInfo string, date time.Time) string {
	day := formatLongDate(date)
	switch metric {
	case metricNotOnMedicalLeave:
		notOnMC := st.TotalEmployees - st.OnMedicalLeave
		return fmt.Sprintf("**Medical Leave Status%s** (%s)\n\n"+
			"**Employees NOT on Medical Leave:** %d out of %d\n"+
			"**Employees on Medical Leave:** %d\n\n"+
			"*%s of employees are not on medical leave today.*",
			contextInfo, day, notOnMC, st.TotalEmployees, st.OnMedicalLeave,
			Percent(notOnMC, st.TotalEmployees))
	case metricMedicalLeave:
		return fmt.Sprintf("**Medical Leave Today%s** (%s)\n\n"+
			"**Employees on Medical Leave:** %d out of %d\n\n"+
			"*%s of employees are on medical leave today.*",
			contextInfo, day, st.OnMedicalLeave, st.TotalEmployees,
			Percent(st.OnMedicalLeave, st.TotalEmployees))
	case metricAbsent:
		return fmt.Sprintf("**Absent Employees%s** (%s)\n\n"+
			"**Absent:** %d out of %d employees\n\n"+
			"*%s absence rate today.*",
			contextInfo, day, st.Absent, st.TotalEmployees,
			Percent(st.Absent, st.TotalEmployees))
	case metricLate:
		return fmt.Sprintf("**Late Check-Ins%s** (%s)\n\n"+
			"**Late Employees:** %d out of %d\n\n"+
			"*%s of employees checked in late today.*",
			contextInfo, day, st.Late, st.TotalEmployees,
			Percent(st.Late, st.TotalEmployees))
	case metricCheckedIn:
		checkedIn := st.Present + st.Late
		return fmt.Sprintf("**Check-In Summary%s** (%s)\n\n"+
			"**Total Checked In:** %d out of %d employees\n"+
			"- On Time: %d\n"+
			"- Late: %d\n\n"+
			"*%s check-in rate today.*",
			contextInfo, day, checkedIn, st.TotalEmployees, st.Present, st.Late,
			Percent(checkedIn, st.TotalEmployees))
	case metricPresent:
		return fmt.Sprintf("**Present Today%s** (%s)\n\n"+
			"**On-Time Check-Ins:** %d out of %d employees\n\n"+
			"*%s punctuality rate today.*",
			contextInfo, day, st.Present, st.TotalEmployees,
			Percent(st.Present, st.TotalEmployees))
	case metricOnLeave:
		return fmt.Sprintf("**On Leave Today%s** (%s)\n\n"+
			"**Employees on Leave:** %d out of %d\n\n"+
			"*%s of employees are on leave today.*",
			contextInfo, day, st.OnLeave, st.TotalEmployees,
			Percent(st.OnLeave, st.TotalEmployees))
	}
	return ""
}

func formatTodayReport(st stats.TodayAttendanceStats, contextInfo string, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Attendance Report%s** (%s)\n\n", contextInfo, formatLongDate(date))
	b.WriteString("**Overall Summary:**\n")
	fmt.Fprintf(&b, "- **Total Employees**: %d\n", st.TotalEmployees)
	fmt.Fprintf(&b, "- **Total Records Today**: %d\n\n", st.Total)
	b.WriteString("**Attendance Breakdown:**\n")
	fmt.Fprintf(&b, "- **Checked In (On Time)**: %d employees\n", st.Present)
	fmt.Fprintf(&b, "- **Late Check-In**: %d employees\n", st.Late)
	fmt.Fprintf(&b, "- **Absent**: %d employees\n", st.Absent)
	fmt.Fprintf(&b, "- **Medical Leave (MC)**: %d employees\n", st.OnMedicalLeave)
	fmt.Fprintf(&b, "- **On Leave**: %d employees\n", st.OnLeave)
	fmt.Fprintf(&b, "- **Holiday**: %d employees\n", st.Holiday)
	fmt.Fprintf(&b, "- **Not Checked In Yet**: %d employees\n\n", st.NotCheckedIn)
	if st.TotalEmployees > 0 {
		b.WriteString("**Attendance Rates:**\n")
		fmt.Fprintf(&b, "- Present Rate: %s\n", Percent(st.Present, st.TotalEmployees))
		fmt.Fprintf(&b, "- Late Rate: %s\n", Percent(st.Late, st.TotalEmployees))
		fmt.Fprintf(&b, "- Absent Rate: %s\n\n", Percent(st.Absent, st.TotalEmployees))
	}
	b.WriteString("*Use the dashboard for detailed individual attendance records.*")
	return b.String()
}

func formatEmployeeTodayDetail(e employee.Employee, rec *attendance.Record, date time.Time) string {
	var b strings.Builder
	if rec == nil {
		fmt.Fprintf(&b, "**%s's Attendance Today**\n\n", e.Name)
		fmt.Fprintf(&b, "**Date:** %s\n", formatLongDate(date))
		fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
		fmt.Fprintf(&b, "**Department:** %s\n", e.DepartmentCode)
		fmt.Fprintf(&b, "**Position:** %s\n", e.Position)
		fmt.Fprintf(&b, "**Status:** %s\n\n", e.Status)
		b.WriteString("**No attendance record found for today.**\n\n")
		b.WriteString("This employee has not checked in yet today.")
		return b.String()
	}

	clockIn := "Not checked in"
	if rec.ClockIn != nil {
		clockIn = *rec.ClockIn
	}
	clockOut := "Not checked out yet"
	if rec.ClockOut != nil {
		clockOut = *rec.ClockOut
	}

	fmt.Fprintf(&b, "**%s's Attendance Today**\n\n", e.Name)
	fmt.Fprintf(&b, "**Date:** %s\n", formatLongDate(date))
	fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
	fmt.Fprintf(&b, "**Department:** %s\n", e.DepartmentCode)
	fmt.Fprintf(&b, "**Position:** %s\n\n", e.Position)
	b.WriteString("**Attendance Details:**\n")
	fmt.Fprintf(&b, "- **Status**: %s\n", rec.Status)
	fmt.Fprintf(&b, "- **Clock In**: %s\n", clockIn)
	fmt.Fprintf(&b, "- **Clock Out**: %s\n", clockOut)
	fmt.Fprintf(&b, "- **Hours Worked**: %g hours\n", rec.HoursWorked)
	fmt.Fprintf(&b, "- **Location**: %s\n", rec.Location)
	if rec.Notes != nil {
		fmt.Fprintf(&b, "- **Notes**: %s\n", *rec.Notes)
	}
	b.WriteString("\n*Real-time attendance data from the database.*")
	return b.String()
}

func formatLeaveHistory(e employee.Employee, records []attendance.Record) string {
	var b strings.Builder
	if len(records) == 0 {
		fmt.Fprintf(&b, "**%s's Leave Records**\n\n", e.Name)
		fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
		fmt.Fprintf(&b, "**Department:** %s\n\n", e.DepartmentCode)
		b.WriteString("**No leave records found.**\n\n")
		b.WriteString("This employee has no recorded leave history in the system.")
		return b.String()
	}

	fmt.Fprintf(&b, "**%s's Leave Records**\n\n", e.Name)
	fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
	fmt.Fprintf(&b, "**Department:** %s\n", e.DepartmentCode)
	fmt.Fprintf(&b, "**Total Leave Records:** %d\n\n", len(records))
	fmt.Fprintf(&b, "**Recent Leave History (Last %d):**\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&b, "- **%s**: %s", formatShortDate(r.Date), r.Status)
		if r.Notes != nil {
			fmt.Fprintf(&b, " - %s", *r.Notes)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n*Leave data from the attendance database.*")
	return b.String()
}

func formatAttendanceHistory(e employee.Employee, records []attendance.Record) string {
	var b strings.Builder
	if len(records) == 0 {
		fmt.Fprintf(&b, "**%s's Attendance Records**\n\n", e.Name)
		fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
		fmt.Fprintf(&b, "**Department:** %s\n\n", e.DepartmentCode)
		b.WriteString("**No attendance records found.**\n\n")
		b.WriteString("This employee has no recorded attendance history in the system.")
		return b.String()
	}

	var present, late, absent, onLeave int
	for _, r := range records {
		switch {
		case r.Status == attendance.StatusPresent:
			present++
		case r.Status == attendance.StatusLate:
			late++
		case r.Status == attendance.StatusAbsent:
			absent++
		case r.IsLeave():
			onLeave++
		}
	}

	fmt.Fprintf(&b, "**%s's Attendance Records**\n\n", e.Name)
	fmt.Fprintf(&b, "**Employee:** %s (%s)\n", e.Name, e.EmployeeID)
	fmt.Fprintf(&b, "**Department:** %s\n", e.DepartmentCode)
	fmt.Fprintf(&b, "**Total Records:** %d\n\n", len(records))
	fmt.Fprintf(&b, "**Summary (Last %d days):**\n", len(records))
	fmt.Fprintf(&b, "- Present: %d days\n", present)
	fmt.Fprintf(&b, "- Late: %d days\n", late)
	fmt.Fprintf(&b, "- Absent: %d days\n", absent)
	fmt.Fprintf(&b, "- On Leave: %d days\n\n", onLeave)
	b.WriteString("**Recent Attendance (Last 10 days):**\n")
	for i, r := range records {
		if i >= 10 {
			break
		}
		clockIn := "N/A"
		if r.ClockIn != nil {
			clockIn = *r.ClockIn
		}
		clockOut := "N/A"
		if r.ClockOut != nil {
			clockOut = *r.ClockOut
		}
		fmt.Fprintf(&b, "- **%s**: %s | In: %s | Out: %s\n", formatShortDate(r.Date), r.Status, clockIn, clockOut)
	}
	b.WriteString("\n*Attendance data from the database.*")
	return b.String()
}

func formatSystemStatistics(sys systemContext, avgYears int) string {
	current := "All Departments"
	if sys.CurrentDepartment != nil {
		current = sys.CurrentDepartment.DeptName
	}

	var b strings.Builder
	b.WriteString("**Comprehensive Statistics**\n\n")
	b.WriteString("**System Overview:**\n")
	fmt.Fprintf(&b, "- **Total Departments**: %d\n", sys.TotalDepartments)
	fmt.Fprintf(&b, "- **Total Employees**: %s\n", groupThousands(int64(sys.TotalEmployees)))
	fmt.Fprintf(&b, "- **Current Department**: %s\n", current)
	fmt.Fprintf(&b, "- **Department Employees**: %d\n", len(sys.DepartmentEmployees))
	fmt.Fprintf(&b, "- **Active Employees**: %d\n\n", sys.Statistics.ActiveEmployees)
	b.WriteString("**Department Insights:**\n")
	fmt.Fprintf(&b, "- **Average Years of Service**: %d years\n", avgYears)
	fmt.Fprintf(&b, "- **Malaysian Citizens**: %d\n", sys.Statistics.Demographics.Nationality[string(employee.Malaysian)])
	fmt.Fprintf(&b, "- **Degree Holders**: %d\n", sys.Statistics.Demographics.Education[string(employee.EducationDegree)])
	fmt.Fprintf(&b, "- **Male/Female Ratio**: %d:%d\n\n",
		sys.Statistics.Demographics.Gender[string(employee.Male)],
		sys.Statistics.Demographics.Gender[string(employee.Female)])
	b.WriteString("*The dashboard shows real-time attendance and performance data.*")
	return b.String()
}

func formatHelp(sys systemContext) string {
	var b strings.Builder
	b.WriteString("**I can help you with:**\n\n")
	b.WriteString("**Department Information**\n")
	b.WriteString("- \"Show me department 11D\" or \"Tell me about JPA\"\n")
	b.WriteString("- \"List all departments\"\n")
	b.WriteString("- Department employee counts and structure\n\n")
	b.WriteString("**Employee Data**\n")
	b.WriteString("- \"Show employee SG000001\" or \"Tell me about Ahmad\"\n")
	b.WriteString("- Individual employee profiles and details\n")
	b.WriteString("- Salary and position information\n\n")
	b.WriteString("**Individual Employee Attendance & Leave**\n")
	b.WriteString("- \"Show attendance for SG000001\" or \"Show attendance for Crystal Wong\"\n")
	b.WriteString("- \"What is Ahmad's attendance today?\"\n")
	b.WriteString("- \"Show leave records for SG000500\"\n\n")
	b.WriteString("**Attendance Queries (Today)**\n")
	b.WriteString("- \"How many employees checked in today?\"\n")
	b.WriteString("- \"How many people are late today?\"\n")
	b.WriteString("- \"How many employees are absent today?\"\n")
	b.WriteString("- \"How many are on medical leave today?\"\n")
	b.WriteString("- \"Show today's attendance report\"\n\n")
	b.WriteString("**Analytics**\n")
	b.WriteString("- \"Show salary statistics\" or \"Demographics analysis\"\n")
	b.WriteString("- Position and grade distributions\n\n")
	b.WriteString("**Tip:** You can search by employee name OR employee ID!\n\n")
	fmt.Fprintf(&b, "*I have access to %d departments with employees (%d total) and %s employees with real-time attendance data!*",
		sys.DepartmentsWithEmployees, sys.TotalDepartments, groupThousands(int64(sys.TotalEmployees)))
	return b.String()
}
