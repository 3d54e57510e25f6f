package handler

import (
	"net/http"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/service"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *zap.Logger, defaultPageSize int) *EmployeeHandler {
	return &EmployeeHandler{
		base:       newBase(logger, defaultPageSize),
		empService: empService,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDeleteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.empService.DeleteBatch(r.Context(), req.IDs); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	emps, total, err := h.empService.GetAll(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	content := make([]dto.EmployeeResponse, len(emps))
	for i := range emps {
		content[i] = toEmployeeResponse(&emps[i])
	}
	h.respondJSON(w, http.StatusOK, dto.NewPageResponse(content, query, total))
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Pinfl:          emp.Pinfl,
		HireDate:       formatDate(emp.HireDate),
		OrganizationID: emp.OrganizationID,
	}
}
