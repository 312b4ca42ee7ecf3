package response

import (
	"errors"
	"net/http"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/attendance"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/chat"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/department"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/employee"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/report"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentCycle):
		Conflict(w, "Department hierarchy contains a cycle")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSearchTermTooShort):
		BadRequest(w, "Search term must be at least 3 characters", nil)
	case errors.Is(err, employee.ErrInvalidEmployeeCode):
		BadRequest(w, "Invalid employee code", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Chat domain errors
	case errors.Is(err, chat.ErrEmptyQuestion):
		BadRequest(w, "Question must not be empty", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Period must be daily, weekly or monthly", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrConfigNotFound):
		NotFound(w, "LLM configuration not found")
	case errors.Is(err, settings.ErrInvalidConfig):
		BadRequest(w, "Invalid LLM configuration", nil)
	case errors.Is(err, settings.ErrKeyNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
