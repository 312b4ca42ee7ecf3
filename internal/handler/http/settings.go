package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/validator"
)

type SettingsHandler interface {
	ListLLMConfigs(w http.ResponseWriter, r *http.Request)
	CreateLLMConfig(w http.ResponseWriter, r *http.Request)
	UpdateLLMConfig(w http.ResponseWriter, r *http.Request)
	DeleteLLMConfig(w http.ResponseWriter, r *http.Request)
	SetDefaultLLMConfig(w http.ResponseWriter, r *http.Request)
	TestLLMConfig(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// ListLLMConfigs implements SettingsHandler. API keys are masked.
func (h *settingsHandlerImpl) ListLLMConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.settingsService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, configs)
}

// CreateLLMConfig implements SettingsHandler
func (h *settingsHandlerImpl) CreateLLMConfig(w http.ResponseWriter, r *http.Request) {
	var cfg settings.LLMConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.settingsService.Create(r.Context(), cfg)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "LLM configuration created", created)
}

// UpdateLLMConfig implements SettingsHandler
func (h *settingsHandlerImpl) UpdateLLMConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Config ID is required", nil)
		return
	}

	var cfg settings.LLMConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.settingsService.Update(r.Context(), id, cfg)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "LLM configuration updated", updated)
}

// DeleteLLMConfig implements SettingsHandler
func (h *settingsHandlerImpl) DeleteLLMConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Config ID is required", nil)
		return
	}

	if err := h.settingsService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "LLM configuration deleted", nil)
}

// SetDefaultLLMConfig implements SettingsHandler
func (h *settingsHandlerImpl) SetDefaultLLMConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Config ID is required", nil)
		return
	}

	if err := h.settingsService.SetDefault(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Default LLM configuration set", nil)
}

// TestLLMConfig implements SettingsHandler. The probe failing is an upstream
// problem, not ours.
func (h *settingsHandlerImpl) TestLLMConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if validator.IsEmpty(id) {
		response.BadRequest(w, "Config ID is required", nil)
		return
	}

	if err := h.settingsService.TestConnection(r.Context(), id); err != nil {
		if errors.Is(err, settings.ErrConfigNotFound) || errors.Is(err, settings.ErrInvalidConfig) {
			response.HandleError(w, err)
		} else {
			response.BadGateway(w, "Connection test failed")
		}
		return
	}
	response.SuccessWithMessage(w, "Connection test succeeded", nil)
}
