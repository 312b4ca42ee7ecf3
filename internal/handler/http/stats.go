package http

import (
	"net/http"
	"time"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/stats"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	GetEmployeeStatistics(w http.ResponseWriter, r *http.Request)
	GetTodayAttendance(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.Service
}

func NewStatsHandler(statsService stats.Service) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

// GetEmployeeStatistics implements StatsHandler
func (h *statsHandlerImpl) GetEmployeeStatistics(w http.ResponseWriter, r *http.Request) {
	deptCode := r.URL.Query().Get("dept")
	if deptCode == "all" {
		deptCode = ""
	}
	response.Success(w, h.statsService.EmployeeStatistics(r.Context(), deptCode))
}

// GetTodayAttendance implements StatsHandler
func (h *statsHandlerImpl) GetTodayAttendance(w http.ResponseWriter, r *http.Request) {
	deptCode := r.URL.Query().Get("dept")
	if deptCode == "all" {
		deptCode = ""
	}
	employeeID := r.URL.Query().Get("employee")
	if employeeID == "all" {
		employeeID = ""
	}
	response.Success(w, h.statsService.TodayAttendance(r.Context(), time.Now(), deptCode, employeeID))
}
