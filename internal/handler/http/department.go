package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/validator"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/resolver"
)

type DepartmentHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	GetAncestry(w http.ResponseWriter, r *http.Request)
	SearchDepartments(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentRepo department.Repository
	statsService   stats.Service
	resolver       resolver.Service
}

func NewDepartmentHandler(departmentRepo department.Repository, statsService stats.Service, res resolver.Service) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentRepo: departmentRepo,
		statsService:   statsService,
		resolver:       res,
	}
}

// ListDepartments implements DepartmentHandler. By default only departments
// with assigned employees are returned, matching the dashboard's pickers.
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	var (
		departments []department.Department
		err         error
	)
	if r.URL.Query().Get("all") == "true" {
		departments, err = h.departmentRepo.GetAll(r.Context())
	} else {
		departments, err = h.departmentRepo.GetWithEmployees(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, department.ToResponseList(departments))
}

// GetDepartment implements DepartmentHandler. The code is resolved exactly
// first, then fuzzily, and the reply carries the department's statistics.
func (h *departmentHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if validator.IsEmpty(code) {
		response.BadRequest(w, "Department code is required", nil)
		return
	}

	dept, err := h.resolver.ResolveDepartment(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	deptStats, err := h.statsService.DepartmentStatistics(r.Context(), dept.DeptCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, deptStats)
}

// GetAncestry implements DepartmentHandler, returning the chain from the
// department up to its root.
func (h *departmentHandlerImpl) GetAncestry(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if validator.IsEmpty(code) {
		response.BadRequest(w, "Department code is required", nil)
		return
	}

	chain, err := h.resolver.DepartmentAncestry(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, department.ToResponseList(chain))
}

// SearchDepartments implements DepartmentHandler - autocomplete search
func (h *departmentHandlerImpl) SearchDepartments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if validator.IsEmpty(query) {
		response.BadRequest(w, "Search query is required", nil)
		return
	}

	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsedLimit, err := strconv.Atoi(l); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	results, err := h.resolver.SearchDepartments(r.Context(), query, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, department.ToResponseList(results))
}
