package handler

import (
	"net/http"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/service"
	"go.uber.org/zap"
)

type RegionHandler struct {
	base
	regionService service.RegionService
}

func NewRegionHandler(regionService service.RegionService, logger *zap.Logger, defaultPageSize int) *RegionHandler {
	return &RegionHandler{
		base:          newBase(logger, defaultPageSize),
		regionService: regionService,
	}
}

func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRegionRequest
	if !h.decode(w, r, &req) {
		return
	}

	region, err := h.regionService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toRegionResponse(region))
}

func (h *RegionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateRegionRequest
	if !h.decode(w, r, &req) {
		return
	}

	region, err := h.regionService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *RegionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.regionService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RegionHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDeleteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.regionService.DeleteBatch(r.Context(), req.IDs); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RegionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	region, err := h.regionService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *RegionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	regions, total, err := h.regionService.GetAll(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	content := make([]dto.RegionResponse, len(regions))
	for i := range regions {
		content[i] = toRegionResponse(&regions[i])
	}
	h.respondJSON(w, http.StatusOK, dto.NewPageResponse(content, query, total))
}

func toRegionResponse(region *domain.Region) dto.RegionResponse {
	return dto.RegionResponse{
		ID:   region.ID,
		Name: region.Name,
	}
}
