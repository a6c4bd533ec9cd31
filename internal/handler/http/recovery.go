package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/recovery"
	"github.com/atlashr/timecore-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecoveryHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListDeclarations(w http.ResponseWriter, r *http.Request)

	Declare(w http.ResponseWriter, r *http.Request)
	UpdateDeclaration(w http.ResponseWriter, r *http.Request)
}

type RecoveryHandlerImpl struct {
	recoveryService recovery.Service
	engine          config.EngineConfig
}

func NewRecoveryHandler(recoveryService recovery.Service, engine config.EngineConfig) RecoveryHandler {
	return &RecoveryHandlerImpl{
		recoveryService: recoveryService,
		engine:          engine,
	}
}

// CreatePeriod implements RecoveryHandler.
func (h *RecoveryHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req recovery.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := h.recoveryService.CreatePeriod(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recovery period created successfully", period)
}

// ListPeriods implements RecoveryHandler.
func (h *RecoveryHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.recoveryService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// GetBalance returns the period with its remaining-hours projection.
func (h *RecoveryHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Recovery period ID is required", nil)
		return
	}

	period, err := h.recoveryService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}

// ListDeclarations implements RecoveryHandler.
func (h *RecoveryHandlerImpl) ListDeclarations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Recovery period ID is required", nil)
		return
	}

	declarations, err := h.recoveryService.ListDeclarations(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, declarations)
}

// Declare implements RecoveryHandler.
func (h *RecoveryHandlerImpl) Declare(w http.ResponseWriter, r *http.Request) {
	var req recovery.DeclareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Declare recovery decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.MinNoteLen = h.engine.MinDeclarationNoteLen

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	declaration, err := h.recoveryService.Declare(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Recovery declaration recorded successfully", declaration)
}

// UpdateDeclaration implements RecoveryHandler.
func (h *RecoveryHandlerImpl) UpdateDeclaration(w http.ResponseWriter, r *http.Request) {
	var req recovery.UpdateDeclarationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDeclaration decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")
	req.MinNoteLen = h.engine.MinDeclarationNoteLen

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	declaration, err := h.recoveryService.UpdateDeclaration(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Recovery declaration updated successfully", declaration)
}
