package chat

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/resolver"
)

// Query categories, one per cascade rule.
const (
	CategoryDepartment      = "department"
	CategoryEmployee        = "employee"
	CategorySalary          = "salary"
	CategoryPosition        = "position"
	CategoryDemographics    = "demographics"
	CategoryTodayAttendance = "attendance_today"
	CategoryEmployeeHistory = "attendance_individual"
	CategoryStatistics      = "statistics"
	CategoryHelp            = "help"
)

const (
	departmentListLimit    = 10
	leaveHistoryLimit      = 10
	attendanceHistoryLimit = 15
)

var (
	deptCodePattern     = regexp.MustCompile(`\b[0-9]+[a-z]+-?[0-9]*\b`)
	employeeCodePattern = regexp.MustCompile(`sg\d{6}`)

	deptLeadInPattern   = regexp.MustCompile(`^(show|tell|about|give|get|find|search)\s+(me|us)?\s*`)
	deptStopWordPattern = regexp.MustCompile(`\b(department|dept|details?|information?|info)\b`)

	employeeStopWordPattern = regexp.MustCompile(`employee|staff|show|tell|about|me|information|info|details`)
	historyStopWordPattern  = regexp.MustCompile(`attendance|leave|show|tell|about|me|information|info|details|for|of|record|today|now|current`)
)

// systemContext is the snapshot of dashboard state a query is answered
// against. It is assembled once per question, before classification.
type systemContext struct {
	TotalDepartments         int
	DepartmentsWithEmployees int
	TotalEmployees           int
	CurrentDepartment        *department.Department
	CurrentEmployee          *employee.Employee
	DepartmentEmployees      []employee.Employee
	Statistics               stats.EmployeeStatistics
}

// rule pairs a category with its predicate and handler. A handler returning
// an empty string falls through to the next rule in the cascade.
type rule struct {
	category string
	matches  func(q string) bool
	handle   func(ctx context.Context, q string, sys systemContext) string
}

// Classifier answers questions from templated data without any model call.
// Rules are evaluated strictly top to bottom and the first rule whose
// predicate matches AND whose handler produces text wins. The order is part
// of the behavioral contract and is covered by tests.
type Classifier struct {
	resolver       resolver.Service
	statsService   stats.Service
	departmentRepo department.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	logger         *slog.Logger
	now            func() time.Time
}

func NewClassifier(
	res resolver.Service,
	statsService stats.Service,
	departmentRepo department.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	logger *slog.Logger,
) *Classifier {
	return &Classifier{
		resolver:       res,
		statsService:   statsService,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// rules returns the cascade in evaluation order.
func (c *Classifier) rules() []rule {
	return []rule{
		{CategoryDepartment, isDepartmentQuery, c.handleDepartment},
		{CategoryEmployee, isEmployeeQuery, c.handleEmployee},
		{CategorySalary, isSalaryQuery, c.handleSalary},
		{CategoryPosition, isPositionQuery, c.handlePosition},
		{CategoryDemographics, isDemographicsQuery, c.handleDemographics},
		{CategoryTodayAttendance, isTodayAttendanceQuery, c.handleTodayAttendance},
		{CategoryEmployeeHistory, isIndividualAttendanceQuery, c.handleIndividualAttendance},
		{CategoryStatistics, isStatisticsQuery, c.handleStatistics},
		{CategoryHelp, func(string) bool { return true }, c.handleHelp},
	}
}

// Classify runs the cascade over the lower-cased question text.
func (c *Classifier) Classify(ctx context.Context, question string, sys systemContext) (category, text string) {
	q := strings.ToLower(question)
	for _, r := range c.rules() {
		if !r.matches(q) {
			continue
		}
		if answer := r.handle(ctx, q, sys); answer != "" {
			return r.category, answer
		}
	}
	// The help rule always answers; this is unreachable.
	return CategoryHelp, formatHelp(sys)
}

func isDepartmentQuery(q string) bool {
	return strings.Contains(q, "department") || strings.Contains(q, "dept") || deptCodePattern.MatchString(q)
}

// isEmployeeQuery matches profile lookups. Day-count questions such as
// "how many employees are absent today?" mention employees too but belong
// to the attendance rule further down the cascade, so they are excluded.
func isEmployeeQuery(q string) bool {
	if strings.Contains(q, "how many") && isTodayAttendanceQuery(q) {
		return false
	}
	return strings.Contains(q, "employee") || strings.Contains(q, "staff")
}

func isSalaryQuery(q string) bool {
	return strings.Contains(q, "salary") || strings.Contains(q, "pay") || strings.Contains(q, "compensation")
}

func isPositionQuery(q string) bool {
	return strings.Contains(q, "position") || strings.Contains(q, "job") || strings.Contains(q, "role")
}

func isDemographicsQuery(q string) bool {
	return strings.Contains(q, "demographic") || strings.Contains(q, "nationality") ||
		strings.Contains(q, "religion") || strings.Contains(q, "gender")
}

// isTodayAttendanceQuery covers workforce-wide day queries. Questions that
// name a specific employee (by code or "attendance for X" phrasing) are
// excluded here so they reach the individual-lookup rule below; without the
// exclusion the broader keyword set would shadow it.
func isTodayAttendanceQuery(q string) bool {
	if isIndividualAttendanceQuery(q) {
		return false
	}
	for _, kw := range []string{"today", "attendance", "present", "absent", "late", "medical leave", "check in", "checked in"} {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func isIndividualAttendanceQuery(q string) bool {
	if employeeCodePattern.MatchString(q) {
		return true
	}
	for _, kw := range []string{"attendance for", "leave for", "attendance of", "leave of", "attendance record", "leave record", "attendance information"} {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func isStatisticsQuery(q string) bool {
	return strings.Contains(q, "statistic") || strings.Contains(q, "data") || strings.Contains(q, "number")
}

func (c *Classifier) handleDepartment(ctx context.Context, q string, sys systemContext) string {
	if strings.Contains(q, "list") || strings.Contains(q, "all") {
		departments, err := c.departmentRepo.GetWithEmployees(ctx)
		if err != nil {
			c.logger.Error("department list query failed", "error", err)
			return ""
		}
		shown := departmentListLimit
		if len(departments) < shown {
			shown = len(departments)
		}
		return formatDepartmentList(departments, shown)
	}

	searchTerm := deptCodePattern.FindString(q)
	if searchTerm == "" {
		searchTerm = deptLeadInPattern.ReplaceAllString(q, "")
		searchTerm = strings.TrimSpace(deptStopWordPattern.ReplaceAllString(searchTerm, ""))
	}

	if searchTerm != "" {
		dept, err := c.resolver.ResolveDepartment(ctx, searchTerm)
		if err == nil {
			deptStats, statsErr := c.statsService.DepartmentStatistics(ctx, dept.DeptCode)
			if statsErr != nil {
				c.logger.Error("department statistics failed", "dept_code", dept.DeptCode, "error", statsErr)
				return ""
			}
			return formatDepartmentDetail(deptStats)
		}
		if !errors.Is(err, department.ErrDepartmentNotFound) {
			c.logger.Error("department resolution failed", "term", searchTerm, "error", err)
		}
	}

	if sys.CurrentDepartment != nil {
		return formatDepartmentOverview(*sys.CurrentDepartment, sys.Statistics)
	}
	return ""
}

func (c *Classifier) handleEmployee(ctx context.Context, q string, sys systemContext) string {
	searchTerm := strings.TrimSpace(employeeStopWordPattern.ReplaceAllString(q, ""))
	if len(searchTerm) > 2 {
		emp, _, err := c.resolver.ResolveEmployee(ctx, searchTerm)
		if err == nil {
			return formatEmployeeProfile(emp, c.departmentName(ctx, emp.DepartmentCode), c.now())
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) && !errors.Is(err, employee.ErrSearchTermTooShort) {
			c.logger.Error("employee resolution failed", "term", searchTerm, "error", err)
		}
	}

	if sys.CurrentEmployee != nil {
		return formatEmployeeProfile(*sys.CurrentEmployee, c.departmentName(ctx, sys.CurrentEmployee.DepartmentCode), c.now())
	}
	return formatEmployeeOverview(sys.TotalEmployees, len(sys.DepartmentEmployees), sys.Statistics)
}

func (c *Classifier) handleSalary(_ context.Context, _ string, sys systemContext) string {
	salaries := make([]float64, 0, len(sys.DepartmentEmployees))
	for _, e := range sys.DepartmentEmployees {
		salaries = append(salaries, e.Salary)
	}
	return formatSalaryAnalysis(sys.Statistics, salaries)
}

func (c *Classifier) handlePosition(_ context.Context, _ string, sys systemContext) string {
	return formatPositionAnalysis(sys.Statistics, countGrades(sys.DepartmentEmployees))
}

func (c *Classifier) handleDemographics(_ context.Context, _ string, sys systemContext) string {
	return formatDemographics(sys.Statistics)
}

func (c *Classifier) handleTodayAttendance(ctx context.Context, q string, sys systemContext) string {
	var deptCode, employeeCode, contextInfo string
	if sys.CurrentDepartment != nil {
		deptCode = sys.CurrentDepartment.DeptCode
		contextInfo = " in " + sys.CurrentDepartment.DeptName
	} else if sys.CurrentEmployee != nil {
		employeeCode = sys.CurrentEmployee.EmployeeID
		contextInfo = " for " + sys.CurrentEmployee.Name
	}

	date := c.now()
	todayStats := c.statsService.TodayAttendance(ctx, date, deptCode, employeeCode)

	if strings.Contains(q, "how many") {
		if metric, ok := matchHowManyMetric(q); ok {
			return formatHowMany(metric, todayStats, contextInfo, date)
		}
	}
	return formatTodayReport(todayStats, contextInfo, date)
}

// matchHowManyMetric narrows a "how many X" question to one metric. The
// branch order matters: "not on medical leave" must be tested before
// "medical leave", and both before the generic "leave" bucket.
func matchHowManyMetric(q string) (attendanceMetric, bool) {
	mentionsMC := strings.Contains(q, "medical leave") || strings.Contains(q, "mc")
	switch {
	case strings.Contains(q, "not") && mentionsMC:
		return metricNotOnMedicalLeave, true
	case mentionsMC:
		return metricMedicalLeave, true
	case strings.Contains(q, "absent"):
		return metricAbsent, true
	case strings.Contains(q, "late"):
		return metricLate, true
	case strings.Contains(q, "check in") || strings.Contains(q, "checked in"):
		return metricCheckedIn, true
	case strings.Contains(q, "present") || strings.Contains(q, "on time"):
		return metricPresent, true
	case strings.Contains(q, "leave") && !strings.Contains(q, "medical"):
		return metricOnLeave, true
	}
	return 0, false
}

func (c *Classifier) handleIndividualAttendance(ctx context.Context, q string, sys systemContext) string {
	token := strings.ToUpper(employeeCodePattern.FindString(q))
	if token == "" {
		token = strings.TrimSpace(historyStopWordPattern.ReplaceAllString(q, ""))
		if len(token) <= 2 {
			return ""
		}
	}

	emp, _, err := c.resolver.ResolveEmployee(ctx, token)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) && !errors.Is(err, employee.ErrSearchTermTooShort) {
			c.logger.Error("employee resolution failed", "term", token, "error", err)
		}
		return ""
	}

	switch {
	case strings.Contains(q, "today") || strings.Contains(q, "now") || strings.Contains(q, "current"):
		date := c.now()
		rec, recErr := c.attendanceRepo.GetForEmployeeOnDate(ctx, emp.ID, date)
		if recErr != nil {
			if errors.Is(recErr, attendance.ErrRecordNotFound) {
				return formatEmployeeTodayDetail(emp, nil, date)
			}
			c.logger.Error("today attendance lookup failed", "employee_id", emp.EmployeeID, "error", recErr)
			return ""
		}
		return formatEmployeeTodayDetail(emp, &rec, date)

	case strings.Contains(q, "leave"):
		records, recErr := c.attendanceRepo.GetLeaveByEmployee(ctx, emp.ID, leaveHistoryLimit)
		if recErr != nil {
			c.logger.Error("leave history lookup failed", "employee_id", emp.EmployeeID, "error", recErr)
			return ""
		}
		return formatLeaveHistory(emp, records)

	default:
		records, recErr := c.attendanceRepo.GetByEmployee(ctx, emp.ID, attendanceHistoryLimit)
		if recErr != nil {
			c.logger.Error("attendance history lookup failed", "employee_id", emp.EmployeeID, "error", recErr)
			return ""
		}
		return formatAttendanceHistory(emp, records)
	}
}

func (c *Classifier) handleStatistics(_ context.Context, _ string, sys systemContext) string {
	avgYears := 0
	if len(sys.DepartmentEmployees) > 0 {
		now := c.now()
		total := 0
		for _, e := range sys.DepartmentEmployees {
			total += e.YearsOfService(now)
		}
		avgYears = int(float64(total)/float64(len(sys.DepartmentEmployees)) + 0.5)
	}
	return formatSystemStatistics(sys, avgYears)
}

func (c *Classifier) handleHelp(_ context.Context, _ string, sys systemContext) string {
	return formatHelp(sys)
}

func (c *Classifier) departmentName(ctx context.Context, deptCode string) string {
	dept, err := c.departmentRepo.GetByCode(ctx, deptCode)
	if err != nil {
		return ""
	}
	return dept.DeptName
}
