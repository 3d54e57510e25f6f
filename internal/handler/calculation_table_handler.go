package handler

import (
	"net/http"
	"strconv"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/service"
	"go.uber.org/zap"
)

type CalculationTableHandler struct {
	base
	calcService service.CalculationTableService
}

func NewCalculationTableHandler(calcService service.CalculationTableService, logger *zap.Logger, defaultPageSize int) *CalculationTableHandler {
	return &CalculationTableHandler{
		base:        newBase(logger, defaultPageSize),
		calcService: calcService,
	}
}

func (h *CalculationTableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCalculationTableRequest
	if !h.decode(w, r, &req) {
		return
	}

	calc, err := h.calcService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toCalculationTableResponse(calc))
}

func (h *CalculationTableHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateCalculationTableRequest
	if !h.decode(w, r, &req) {
		return
	}

	calc, err := h.calcService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toCalculationTableResponse(calc))
}

func (h *CalculationTableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.calcService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CalculationTableHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchDeleteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.calcService.DeleteBatch(r.Context(), req.IDs); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CalculationTableHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	calc, err := h.calcService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toCalculationTableResponse(calc))
}

func (h *CalculationTableHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	calcs, total, err := h.calcService.GetAll(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	content := make([]dto.CalculationTableResponse, len(calcs))
	for i := range calcs {
		content[i] = toCalculationTableResponse(&calcs[i])
	}
	h.respondJSON(w, http.StatusOK, dto.NewPageResponse(content, query, total))
}

// GetAllRate - GET .../all-rate?date=yyyy.MM.dd&rate=<double>
func (h *CalculationTableHandler) GetAllRate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.reportDate(w, r)
	if !ok {
		return
	}

	rateStr := r.URL.Query().Get("rate")
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid rate: "+rateStr)
		return
	}

	query, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	rows, total, err := h.calcService.GetAllRate(r.Context(), date, rate, &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	content := make([]dto.RateTotalResponse, len(rows))
	for i, row := range rows {
		content[i] = dto.RateTotalResponse{Pinfl: row.Pinfl, AllRate: row.AllRate}
	}
	h.respondJSON(w, http.StatusOK, dto.NewPageResponse(content, query, total))
}

// GetAllDifferentRegion - GET .../diffrent-region?date=yyyy.MM.dd
func (h *CalculationTableHandler) GetAllDifferentRegion(w http.ResponseWriter, r *http.Request) {
	date, ok := h.reportDate(w, r)
	if !ok {
		return
	}

	rows, err := h.calcService.GetAllDifferentRegion(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DifferentRegionResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.DifferentRegionResponse{AllOrganization: row.AllOrganization, AllAmount: row.AllAmount}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetAllChildOrganization - GET .../child-organization?date=yyyy.MM.dd&organizationId=<id>
func (h *CalculationTableHandler) GetAllChildOrganization(w http.ResponseWriter, r *http.Request) {
	date, ok := h.reportDate(w, r)
	if !ok {
		return
	}

	orgStr := r.URL.Query().Get("organizationId")
	orgID, err := strconv.ParseInt(orgStr, 10, 64)
	if err != nil || orgID <= 0 {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid organizationId: "+orgStr)
		return
	}

	rows, err := h.calcService.GetAllChildOrganization(r.Context(), date, orgID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ChildOrganizationResponse, len(rows))
	for i := range rows {
		resp[i] = toChildOrganizationResponse(&rows[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// GetAllEmployeeInfo - GET .../employee-info?date=yyyy.MM.dd
func (h *CalculationTableHandler) GetAllEmployeeInfo(w http.ResponseWriter, r *http.Request) {
	date, ok := h.reportDate(w, r)
	if !ok {
		return
	}

	rows, err := h.calcService.GetAllEmployeeInfo(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeInfoResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.EmployeeInfoResponse{
			FullName:         row.FullName,
			OrganizationName: row.OrganizationName,
			Amount:           row.Amount,
			CalculationType:  string(row.CalculationType),
			Date:             formatDate(row.Date),
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func toCalculationTableResponse(calc *domain.CalculationTable) dto.CalculationTableResponse {
	return dto.CalculationTableResponse{
		ID:              calc.ID,
		EmployeeID:      calc.EmployeeID,
		OrganizationID:  calc.OrganizationID,
		Amount:          calc.Amount,
		Rate:            calc.Rate,
		Date:            formatDate(calc.Date),
		CalculationType: string(calc.CalculationType),
	}
}

func toChildOrganizationResponse(row *domain.ChildOrganizationRow) dto.ChildOrganizationResponse {
	resp := dto.ChildOrganizationResponse{
		EmployeeID:       row.EmployeeID,
		FullName:         row.FullName,
		OrganizationID:   row.OrganizationID,
		OrganizationName: row.OrganizationName,
		ParentID:         row.ParentID,
	}

	if row.Amount.Valid {
		amount := row.Amount.Decimal
		resp.Amount = &amount
	}
	if row.Date != nil {
		date := formatDate(*row.Date)
		resp.Date = &date
	}

	return resp
}
