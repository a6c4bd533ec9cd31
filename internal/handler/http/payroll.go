package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atlashr/timecore-backend-go/internal/domain/payroll"
	"github.com/atlashr/timecore-backend-go/internal/handler/http/response"
	"github.com/atlashr/timecore-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type PayrollHandler interface {
	CreatePrimeType(w http.ResponseWriter, r *http.Request)
	ListPrimeTypes(w http.ResponseWriter, r *http.Request)
	AssignPrime(w http.ResponseWriter, r *http.Request)
	ListEmployeePrimes(w http.ResponseWriter, r *http.Request)
	ComputeExemptions(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreatePrimeType implements PayrollHandler.
func (h *PayrollHandlerImpl) CreatePrimeType(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePrimeTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePrimeType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	primeType, err := h.payrollService.CreatePrimeType(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Prime type created successfully", primeType)
}

// ListPrimeTypes implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPrimeTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.payrollService.ListPrimeTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// AssignPrime implements PayrollHandler.
func (h *PayrollHandlerImpl) AssignPrime(w http.ResponseWriter, r *http.Request) {
	var req payroll.AssignPrimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignPrime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	prime, err := h.payrollService.AssignPrime(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Prime assigned successfully", prime)
}

// ListEmployeePrimes implements PayrollHandler.
func (h *PayrollHandlerImpl) ListEmployeePrimes(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	primes, err := h.payrollService.ListEmployeePrimes(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, primes)
}

type computeExemptionsRequest struct {
	EmployeeID      string `json:"employee_id"`
	ReferenceSalary string `json:"reference_salary"`
}

// ComputeExemptions builds the per-prime exemption statement for an
// employee. The computation is pure; nothing is persisted.
func (h *PayrollHandlerImpl) ComputeExemptions(w http.ResponseWriter, r *http.Request) {
	var req computeExemptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ComputeExemptions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(req.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	referenceSalary, err := decimal.NewFromString(req.ReferenceSalary)
	if err != nil || referenceSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_salary",
			Message: "reference_salary must be a non-negative number",
		})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	statement, err := h.payrollService.ExemptionStatement(r.Context(), req.EmployeeID, referenceSalary)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, statement)
}
