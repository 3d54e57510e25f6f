package handler

import (
	"net/http"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/service"
	"go.uber.org/zap"
)

type OrganizationHandler struct {
	base
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService, logger *zap.Logger, defaultPageSize int) *OrganizationHandler {
	return &OrganizationHandler{
		base:       newBase(logger, defaultPageSize),
		orgService: orgService,
	}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrganizationRequest
	if !h.decode(w, r, &req) {
		return
	}

	org, err := h.orgService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if !h.decode(w, r, &req) {
		return
	}

	org, err := h.orgService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOrganizationResponse(org))
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.orgService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrganizationHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDeleteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.orgService.DeleteBatch(r.Context(), req.IDs); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrganizationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	org, err := h.orgService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOrganizationResponse(org))
}

func (h *OrganizationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	orgs, total, err := h.orgService.GetAll(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	content := make([]dto.OrganizationResponse, len(orgs))
	for i := range orgs {
		content[i] = toOrganizationResponse(&orgs[i])
	}
	h.respondJSON(w, http.StatusOK, dto.NewPageResponse(content, query, total))
}

func toOrganizationResponse(org *domain.Organization) dto.OrganizationResponse {
	return dto.OrganizationResponse{
		ID:       org.ID,
		Name:     org.Name,
		RegionID: org.RegionID,
		ParentID: org.ParentID,
	}
}
