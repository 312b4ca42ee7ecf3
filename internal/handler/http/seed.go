package http

import (
	"net/http"

	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
	"github.com/jpkn-sabah/attendance-backend-go/internal/service/seed"
)

type SeedHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Retry(w http.ResponseWriter, r *http.Request)
}

type seedHandlerImpl struct {
	runner *seed.Runner
}

func NewSeedHandler(runner *seed.Runner) SeedHandler {
	return &seedHandlerImpl{runner: runner}
}

// GetStatus implements SeedHandler
func (h *seedHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.runner.Status())
}

// Retry implements SeedHandler. The flag is cleared and all three phases run
// again from scratch; already-present rows are skipped by the phases.
func (h *seedHandlerImpl) Retry(w http.ResponseWriter, r *http.Request) {
	status := h.runner.Retry(r.Context())
	if status.State == seed.StateFailed {
		response.SuccessWithMessage(w, "Seeding failed, see status", status)
		return
	}
	response.SuccessWithMessage(w, "Seeding completed", status)
}
