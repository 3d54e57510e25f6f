package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// base - общие для всех обработчиков разбор запроса и запись ответа
type base struct {
	validator       *validator.Validate
	logger          *zap.Logger
	defaultPageSize int
}

func newBase(logger *zap.Logger, defaultPageSize int) base {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return base{
		validator:       validator.New(),
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// decode читает JSON тело и проверяет его теги validate.
// При ошибке ответ уже записан.
func (h *base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "validation error: "+err.Error())
		return false
	}
	return true
}

func (h *base) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid id: "+r.PathValue("id"))
		return 0, false
	}
	return id, true
}

func (h *base) parsePage(w http.ResponseWriter, r *http.Request) (dto.PageQuery, bool) {
	query := dto.PageQuery{Page: 0, Size: h.defaultPageSize}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid page: "+pageStr)
			return query, false
		}
		query.Page = page
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid size: "+sizeStr)
			return query, false
		}
		query.Size = size
	}

	if err := h.validator.Struct(&query); err != nil {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "validation error: "+err.Error())
		return query, false
	}
	return query, true
}

// reportDate разбирает обязательный параметр date в формате yyyy.MM.dd
func (h *base) reportDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get("date")
	date, err := time.Parse(dto.ReportDateLayout, value)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, http.StatusBadRequest, "invalid date, expected yyyy.MM.dd: "+value)
		return time.Time{}, false
	}
	return date, true
}

// handleServiceError переводит ошибку сервиса в ответ.
// Все бизнес-ошибки отдаются со статусом 400 и различаются только кодом.
func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	switch {
	case errors.As(err, &domainErr):
		h.respondError(w, http.StatusBadRequest, int(domainErr.Code), domainErr.Message)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		h.respondError(w, http.StatusConflict, http.StatusConflict, "record conflicts with an existing one")
	default:
		h.logger.Error("internal error", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, http.StatusInternalServerError, "internal server error")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status, code int, message string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Code: code, Message: message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}

func formatDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}
