package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atlashr/timecore-backend-go/internal/config"
	"github.com/atlashr/timecore-backend-go/internal/domain/attendance"
	"github.com/atlashr/timecore-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Declare(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
	engine            config.EngineConfig
}

func NewAttendanceHandler(attendanceService attendance.Service, engine config.EngineConfig) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		engine:            engine,
	}
}

// Declare implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Declare(w http.ResponseWriter, r *http.Request) {
	var req attendance.DeclareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Declare decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.ActorID = actor
	// Self-declaration unless an explicit employee is targeted.
	if req.EmployeeID == "" {
		req.EmployeeID = actor
	}
	req.MinNoteLen = h.engine.MinDeclarationNoteLen

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.Declare(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance declared successfully", record)
}

// Resolve implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req attendance.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.ID = chi.URLParam(r, "id")

	actor, ok := actorID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.ActorID = actor
	req.MinNoteLen = h.engine.MinResolutionNoteLen

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Resolve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.StillAnomalous {
		response.SuccessWithMessage(w, "Resolution recorded, corrected values re-triggered a detection rule", result)
		return
	}
	response.SuccessWithMessage(w, "Anomaly resolved successfully", result)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance record ID is required", nil)
		return
	}

	record, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}
	if anomaly := r.URL.Query().Get("anomaly"); anomaly != "" {
		filter.OnlyAnomaly = anomaly == "true"
	}
	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil {
			filter.Page = p
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			filter.Limit = l
		}
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
