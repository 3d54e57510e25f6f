package handler

import (
	"net/http"

	"github.com/org-payroll-api/internal/middleware"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// crudHandler - набор операций, общий для всех ресурсов
type crudHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteBatch(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
}

// Router настраивает маршруты API
type Router struct {
	mux     *http.ServeMux
	logger  *zap.Logger
	regionH *RegionHandler
	orgH    *OrganizationHandler
	empH    *EmployeeHandler
	calcH   *CalculationTableHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	regionH *RegionHandler,
	orgH *OrganizationHandler,
	empH *EmployeeHandler,
	calcH *CalculationTableHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		mux:     http.NewServeMux(),
		logger:  logger,
		regionH: regionH,
		orgH:    orgH,
		empH:    empH,
		calcH:   calcH,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.resource("region", r.regionH)
	r.resource("organization", r.orgH)
	r.resource("employee", r.empH)
	r.resource("calculation-table", r.calcH)

	// Отчёты. Написание diffrent-region сохранено ради совместимости клиентов.
	r.mux.HandleFunc("GET "+apiPrefix+"/calculation-table/all-rate", r.calcH.GetAllRate)
	r.mux.HandleFunc("GET "+apiPrefix+"/calculation-table/diffrent-region", r.calcH.GetAllDifferentRegion)
	r.mux.HandleFunc("GET "+apiPrefix+"/calculation-table/child-organization", r.calcH.GetAllChildOrganization)
	r.mux.HandleFunc("GET "+apiPrefix+"/calculation-table/employee-info", r.calcH.GetAllEmployeeInfo)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.Actor(r.mux)
	handler = middleware.ContentType(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) resource(name string, h crudHandler) {
	path := apiPrefix + "/" + name
	r.mux.HandleFunc("POST "+path, h.Create)
	r.mux.HandleFunc("GET "+path, h.GetAll)
	r.mux.HandleFunc("DELETE "+path, h.DeleteBatch)
	r.mux.HandleFunc("GET "+path+"/{id}", h.GetByID)
	r.mux.HandleFunc("PUT "+path+"/{id}", h.Update)
	r.mux.HandleFunc("DELETE "+path+"/{id}", h.Delete)
}
