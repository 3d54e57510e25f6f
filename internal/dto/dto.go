package dto

import (
	"github.com/shopspring/decimal"
)

// DateLayout - формат дат в теле запросов и ответов
const DateLayout = "2006-01-02"

// ReportDateLayout - формат параметра date в отчётах
const ReportDateLayout = "2006.01.02"

// CreateRegionRequest - запрос на создание региона
type CreateRegionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateRegionRequest - частичное обновление региона
type UpdateRegionRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// CreateOrganizationRequest - запрос на создание организации
type CreateOrganizationRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	RegionID int64  `json:"region_id" validate:"required,min=1"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,min=1"`
}

// UpdateOrganizationRequest - частичное обновление организации
type UpdateOrganizationRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	RegionID *int64  `json:"region_id" validate:"omitempty,min=1"`
	ParentID *int64  `json:"parent_id" validate:"omitempty,min=1"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=50"`
	LastName       string `json:"last_name" validate:"required,min=1,max=50"`
	Pinfl          int64  `json:"pinfl" validate:"required,min=1"`
	HireDate       string `json:"hire_date" validate:"required,datetime=2006-01-02"`
	OrganizationID int64  `json:"organization_id" validate:"required,min=1"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника.
// Pinfl и OrganizationID применяются только вместе.
type UpdateEmployeeRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Pinfl          *int64  `json:"pinfl" validate:"omitempty,min=1"`
	HireDate       *string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	OrganizationID *int64  `json:"organization_id" validate:"omitempty,min=1"`
}

// CreateCalculationTableRequest - запрос на создание расчётной записи
type CreateCalculationTableRequest struct {
	EmployeeID      int64            `json:"employee_id" validate:"required,min=1"`
	OrganizationID  int64            `json:"organization_id" validate:"required,min=1"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	Rate            *float64         `json:"rate" validate:"required"`
	Date            string           `json:"date" validate:"required,datetime=2006-01-02"`
	CalculationType string           `json:"calculation_type" validate:"required,oneof=BASE BONUS VACATION SICK_LEAVE"`
}

// UpdateCalculationTableRequest - частичное обновление расчётной записи
type UpdateCalculationTableRequest struct {
	EmployeeID      *int64           `json:"employee_id" validate:"omitempty,min=1"`
	OrganizationID  *int64           `json:"organization_id" validate:"omitempty,min=1"`
	Amount          *decimal.Decimal `json:"amount"`
	Rate            *float64         `json:"rate"`
	Date            *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CalculationType *string          `json:"calculation_type" validate:"omitempty,oneof=BASE BONUS VACATION SICK_LEAVE"`
}

// BatchDeleteRequest - мягкое удаление нескольких записей
type BatchDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,min=1"`
}

// RegionResponse - ответ с данными региона
type RegionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrganizationResponse - ответ с данными организации
type OrganizationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RegionID int64  `json:"region_id"`
	ParentID *int64 `json:"parent_id"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Pinfl          int64  `json:"pinfl"`
	HireDate       string `json:"hire_date"`
	OrganizationID int64  `json:"organization_id"`
}

// CalculationTableResponse - ответ с данными расчётной записи
type CalculationTableResponse struct {
	ID              int64           `json:"id"`
	EmployeeID      int64           `json:"employee_id"`
	OrganizationID  int64           `json:"organization_id"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            float64         `json:"rate"`
	Date            string          `json:"date"`
	CalculationType string          `json:"calculation_type"`
}

// RateTotalResponse - сумма ставок по ПИНФЛ за месяц
type RateTotalResponse struct {
	Pinfl   int64   `json:"pinfl"`
	AllRate float64 `json:"all_rate"`
}

// DifferentRegionResponse - итог по сотрудникам с начислениями в разных регионах
type DifferentRegionResponse struct {
	AllOrganization int64           `json:"all_organization"`
	AllAmount       decimal.Decimal `json:"all_amount"`
}

// ChildOrganizationResponse - строка отчёта по дочерним организациям
type ChildOrganizationResponse struct {
	EmployeeID       *int64           `json:"employee_id"`
	FullName         *string          `json:"full_name"`
	OrganizationID   int64            `json:"organization_id"`
	OrganizationName string           `json:"organization_name"`
	ParentID         *int64           `json:"parent_id"`
	Amount           *decimal.Decimal `json:"amount"`
	Date             *string          `json:"date"`
}

// EmployeeInfoResponse - строка отчёта по начислениям сотрудников
type EmployeeInfoResponse struct {
	FullName         string          `json:"full_name"`
	OrganizationName string          `json:"organization_name"`
	Amount           decimal.Decimal `json:"amount"`
	CalculationType  string          `json:"calculation_type"`
	Date             string          `json:"date"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
