package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTotal - сумма ставок по ПИНФЛ за месяц
type RateTotal struct {
	Pinfl   int64   `json:"pinfl" gorm:"column:pinfl"`
	AllRate float64 `json:"all_rate" gorm:"column:all_rate"`
}

// DifferentRegionTotal - сотрудники, получавшие начисления в нескольких регионах за месяц
type DifferentRegionTotal struct {
	AllOrganization int64           `json:"all_organization" gorm:"column:all_organization"`
	AllAmount       decimal.Decimal `json:"all_amount" gorm:"column:all_amount"`
}

// ChildOrganizationRow - строка свёртки по дочерним организациям.
// Для организации без начислений за месяц сотрудник, сумма и дата пустые.
type ChildOrganizationRow struct {
	EmployeeID       *int64              `json:"employee_id" gorm:"column:employee_id"`
	FullName         *string             `json:"full_name" gorm:"column:full_name"`
	OrganizationID   int64               `json:"organization_id" gorm:"column:organization_id"`
	OrganizationName string              `json:"organization_name" gorm:"column:organization_name"`
	ParentID         *int64              `json:"parent_id" gorm:"column:parent_id"`
	Amount           decimal.NullDecimal `json:"amount" gorm:"column:amount"`
	Date             *time.Time          `json:"date" gorm:"column:date"`
}

// EmployeeInfoRow - сумма начислений сотрудника по организации, типу и дате
type EmployeeInfoRow struct {
	FullName         string          `json:"full_name" gorm:"column:full_name"`
	OrganizationName string          `json:"organization_name" gorm:"column:organization_name"`
	Amount           decimal.Decimal `json:"amount" gorm:"column:amount"`
	CalculationType  CalculationType `json:"calculation_type" gorm:"column:calculation_type"`
	Date             time.Time       `json:"date" gorm:"column:date"`
}
