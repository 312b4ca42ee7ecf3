package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	chatdomain "github.com/jpkn-sabah/attendance-backend-go/internal/domain/chat"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/llm"
)

// CategoryGeneral marks answers produced by an external model rather than
// the local cascade.
const CategoryGeneral = "general"

const promptEmployeeSample = 10

type ChatServiceImpl struct {
	classifier      *Classifier
	departmentRepo  department.Repository
	employeeRepo    employee.Repository
	statsService    stats.Service
	settingsService settings.Service
	llmClient       llm.Client
	logger          *slog.Logger
}

func NewChatService(
	classifier *Classifier,
	departmentRepo department.Repository,
	employeeRepo employee.Repository,
	statsService stats.Service,
	settingsService settings.Service,
	llmClient llm.Client,
	logger *slog.Logger,
) chatdomain.Service {
	return &ChatServiceImpl{
		classifier:      classifier,
		departmentRepo:  departmentRepo,
		employeeRepo:    employeeRepo,
		statsService:    statsService,
		settingsService: settingsService,
		llmClient:       llmClient,
		logger:          logger,
	}
}

// Ask answers one question. A configured default LLM is tried first; any
// failure there degrades to the deterministic local cascade, never to an
// error the caller has to handle.
func (s *ChatServiceImpl) Ask(ctx context.Context, question string, chatCtx chatdomain.Context) (chatdomain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return chatdomain.Answer{}, chatdomain.ErrEmptyQuestion
	}

	sys := s.buildContext(ctx, chatCtx)

	note := ""
	cfg, err := s.settingsService.Default(ctx)
	if err == nil && cfg.Configured() {
		text, llmErr := s.llmClient.Complete(ctx, cfg, s.systemPrompt(sys), question)
		if llmErr == nil {
			return chatdomain.Answer{
				Category: CategoryGeneral,
				Text:     text,
				Source:   chatdomain.SourceLLM,
			}, nil
		}
		s.logger.Warn("llm completion failed, answering locally",
			"provider", cfg.Provider, "model", cfg.Model, "error", llmErr)
		note = "AI completion is unavailable right now; this answer was generated from live records."
	} else if err != nil && !errors.Is(err, settings.ErrConfigNotFound) {
		s.logger.Error("loading default llm config failed", "error", err)
	}

	category, text := s.classifier.Classify(ctx, question, sys)
	return chatdomain.Answer{
		Category: category,
		Text:     text,
		Source:   chatdomain.SourceLocal,
		Note:     note,
	}, nil
}

// buildContext assembles the dashboard snapshot the question is answered
// against. Individual fetch failures are logged and leave their slice of the
// snapshot zero-valued; a question is still answerable from partial context.
func (s *ChatServiceImpl) buildContext(ctx context.Context, chatCtx chatdomain.Context) systemContext {
	var sys systemContext

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		departments, err := s.departmentRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("all departments: %w", err)
		}
		sys.TotalDepartments = len(departments)
		return nil
	})
	g.Go(func() error {
		departments, err := s.departmentRepo.GetWithEmployees(gctx)
		if err != nil {
			return fmt.Errorf("departments with employees: %w", err)
		}
		sys.DepartmentsWithEmployees = len(departments)
		return nil
	})
	g.Go(func() error {
		count, err := s.employeeRepo.Count(gctx, "")
		if err != nil {
			return fmt.Errorf("employee count: %w", err)
		}
		sys.TotalEmployees = int(count)
		return nil
	})

	deptCode := ""
	if chatCtx.DepartmentSelected() {
		deptCode = chatCtx.SelectedDepartment
		g.Go(func() error {
			dept, err := s.departmentRepo.GetByCode(gctx, deptCode)
			if err != nil {
				return fmt.Errorf("selected department: %w", err)
			}
			sys.CurrentDepartment = &dept
			return nil
		})
	}
	if chatCtx.EmployeeSelected() {
		g.Go(func() error {
			emp, err := s.employeeRepo.GetByEmployeeID(gctx, chatCtx.SelectedEmployee)
			if err != nil {
				return fmt.Errorf("selected employee: %w", err)
			}
			sys.CurrentEmployee = &emp
			return nil
		})
	}
	g.Go(func() error {
		var (
			employees []employee.Employee
			err       error
		)
		if deptCode != "" {
			employees, err = s.employeeRepo.GetByDepartment(gctx, deptCode)
		} else {
			employees, err = s.employeeRepo.GetAll(gctx)
		}
		if err != nil {
			return fmt.Errorf("department employees: %w", err)
		}
		sys.DepartmentEmployees = employees
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("chat context build degraded", "error", err)
	}

	sys.Statistics = s.statsService.EmployeeStatistics(ctx, deptCode)
	return sys
}

func (s *ChatServiceImpl) systemPrompt(sys systemContext) string {
	selectedDept := "All Departments"
	if sys.CurrentDepartment != nil {
		selectedDept = sys.CurrentDepartment.DeptCode + " - " + sys.CurrentDepartment.DeptName
	}
	selectedEmp := "All Employees"
	if sys.CurrentEmployee != nil {
		selectedEmp = sys.CurrentEmployee.EmployeeID + " - " + sys.CurrentEmployee.Name
	}

	var b strings.Builder
	b.WriteString("You are an AI assistant for the Sabah Government Attendance Management System. You have access to the following data:\n\n")
	b.WriteString("CURRENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Selected Department: %s\n", selectedDept)
	fmt.Fprintf(&b, "- Selected Employee: %s\n", selectedEmp)
	fmt.Fprintf(&b, "- Total Departments in System: %d\n", sys.TotalDepartments)
	fmt.Fprintf(&b, "- Departments with Employees: %d\n", sys.DepartmentsWithEmployees)
	fmt.Fprintf(&b, "- Total Employees: %d\n\n", sys.TotalEmployees)
	b.WriteString("CURRENT DEPARTMENT EMPLOYEES (sample):\n")
	for i, e := range sys.DepartmentEmployees {
		if i >= promptEmployeeSample {
			break
		}
		fmt.Fprintf(&b, "- %s (%s), %s, %s, status %s\n", e.Name, e.EmployeeID, e.Position, e.DepartmentCode, e.Status)
	}
	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("1. PRIORITY: Always check the provided data first for department and employee information\n")
	b.WriteString("2. Provide detailed, accurate information about departments, employees, and attendance data\n")
	b.WriteString("3. Use the current context (selected department/employee) to provide relevant responses\n")
	b.WriteString("4. For general questions not in the data, use your knowledge\n")
	b.WriteString("5. Format responses with markdown for better readability\n")
	b.WriteString("6. Include relevant statistics and insights when possible\n")
	b.WriteString("7. Be helpful, professional, and concise\n")
	return b.String()
}
