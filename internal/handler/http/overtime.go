package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atlashr/timecore-backend-go/internal/domain/overtime"
	"github.com/atlashr/timecore-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create overtime request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID == "" {
		actor, ok := actorID(r)
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		req.EmployeeID = actor
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.overtimeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted successfully", request)
}

func (h *OvertimeHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	validate func(req *overtime.DecideRequest) error,
	decide func(r *http.Request, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error),
) {
	var req overtime.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Decide overtime request decode error", "error", err)
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

	if err := validate(&req); err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := decide(r, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, request)
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "Overtime request approved successfully",
		func(req *overtime.DecideRequest) error { return req.Validate() },
		func(r *http.Request, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
			return h.overtimeService.Approve(r.Context(), req)
		})
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "Overtime request rejected",
		func(req *overtime.DecideRequest) error { return req.Validate() },
		func(r *http.Request, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
			return h.overtimeService.Reject(r.Context(), req)
		})
}

// Cancel implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "Overtime request cancelled",
		func(req *overtime.DecideRequest) error { return req.ValidateCancel() },
		func(r *http.Request, req overtime.DecideRequest) (overtime.OvertimeRequestResponse, error) {
			return h.overtimeService.Cancel(r.Context(), req)
		})
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	request, err := h.overtimeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := overtime.Filter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     r.URL.Query().Get("status"),
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

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
