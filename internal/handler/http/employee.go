package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/validator"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/resolver"
)

const (
	defaultHistoryLimit = 30
	defaultLeaveLimit   = 10
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	SearchEmployees(w http.ResponseWriter, r *http.Request)
	GetAttendanceHistory(w http.ResponseWriter, r *http.Request)
	GetLeaveRecords(w http.ResponseWriter, r *http.Request)
	GetTodayAttendance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	resolver       resolver.Service
}

func NewEmployeeHandler(employeeRepo employee.Repository, attendanceRepo attendance.Repository, res resolver.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		resolver:       res,
	}
}

// ListEmployees implements EmployeeHandler, optionally filtered by department.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		employees []employee.Employee
		err       error
	)
	if dept := r.URL.Query().Get("dept"); dept != "" && dept != "all" {
		employees, err = h.employeeRepo.GetByDepartment(r.Context(), dept)
	} else {
		employees, err = h.employeeRepo.GetAll(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponseList(employees, time.Now()))
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.employeeFromPath(w, r)
	if !ok {
		return
	}
	response.Success(w, employee.ToResponse(emp, time.Now()))
}

// SearchEmployees implements EmployeeHandler - autocomplete search
func (h *employeeHandlerImpl) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if validator.IsEmpty(query) {
		response.BadRequest(w, "Search query is required", nil)
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsedLimit, err := strconv.Atoi(l); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	results, err := h.resolver.SearchEmployees(r.Context(), query, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee.ToResponseList(results, time.Now()))
}

// GetAttendanceHistory implements EmployeeHandler, latest records first.
func (h *employeeHandlerImpl) GetAttendanceHistory(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.employeeFromPath(w, r)
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsedLimit, err := strconv.Atoi(l); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	records, err := h.attendanceRepo.GetByEmployee(r.Context(), emp.ID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]any{
		"employee": employee.ToResponse(emp, time.Now()),
		"records":  attendance.ToResponseList(records),
	})
}

// GetLeaveRecords implements EmployeeHandler, leave-bucket records only.
func (h *employeeHandlerImpl) GetLeaveRecords(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.employeeFromPath(w, r)
	if !ok {
		return
	}

	limit := defaultLeaveLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsedLimit, err := strconv.Atoi(l); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	records, err := h.attendanceRepo.GetLeaveByEmployee(r.Context(), emp.ID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]any{
		"employee": employee.ToResponse(emp, time.Now()),
		"records":  attendance.ToResponseList(records),
	})
}

// GetTodayAttendance implements EmployeeHandler. A missing record is not an
// error; the dashboard renders "not checked in yet".
func (h *employeeHandlerImpl) GetTodayAttendance(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.employeeFromPath(w, r)
	if !ok {
		return
	}

	rec, err := h.attendanceRepo.GetForEmployeeOnDate(r.Context(), emp.ID, time.Now())
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			response.Success(w, map[string]any{
				"employee": employee.ToResponse(emp, time.Now()),
				"record":   nil,
			})
			return
		}
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]any{
		"employee": employee.ToResponse(emp, time.Now()),
		"record":   attendance.ToResponse(rec),
	})
}

func (h *employeeHandlerImpl) employeeFromPath(w http.ResponseWriter, r *http.Request) (employee.Employee, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidEmployeeCode(id) {
		response.HandleError(w, employee.ErrInvalidEmployeeCode)
		return employee.Employee{}, false
	}

	emp, err := h.employeeRepo.GetByEmployeeID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return employee.Employee{}, false
	}
	return emp, true
}
