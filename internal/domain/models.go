package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseModel - общие поля всех сущностей: идентификатор, аудит и флаг мягкого удаления
type BaseModel struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt  time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`
	UpdatedAt  time.Time `json:"modified_date" gorm:"column:modified_date;autoUpdateTime"`
	CreatedBy  string    `json:"created_by" gorm:"type:varchar(100)"`
	ModifiedBy string    `json:"modified_by" gorm:"type:varchar(100)"`
	Deleted    bool      `json:"deleted" gorm:"not null;default:false"`
}

func (m *BaseModel) GetID() int64 {
	return m.ID
}

func (m *BaseModel) MarkDeleted() {
	m.Deleted = true
}

// BeforeCreate проставляет автора записи из контекста запроса
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	actor := ActorFromContext(tx.Statement.Context)
	if m.CreatedBy == "" {
		m.CreatedBy = actor
	}
	m.ModifiedBy = actor
	return nil
}

// BeforeUpdate обновляет автора последнего изменения.
// SetColumn нужен, чтобы поле попало и в Save, и в Update по map.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("modified_by", ActorFromContext(tx.Statement.Context))
	return nil
}

// Region представляет регион
type Region struct {
	BaseModel
	Name string `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:ux_region_name"`
}

// TableName задаёт имя таблицы для GORM
func (Region) TableName() string {
	return "region"
}

// Organization представляет организацию. Корневые организации не имеют родителя.
type Organization struct {
	BaseModel
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	RegionID int64  `json:"region_id" gorm:"not null;index"`
	ParentID *int64 `json:"parent_id" gorm:"index"`

	Region *Region       `json:"-" gorm:"foreignKey:RegionID"`
	Parent *Organization `json:"-" gorm:"foreignKey:ParentID"`
}

// TableName задаёт имя таблицы для GORM
func (Organization) TableName() string {
	return "organization"
}

// Employee представляет сотрудника организации.
// Пара (pinfl, organization_id) уникальна.
type Employee struct {
	BaseModel
	FirstName      string    `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName       string    `json:"last_name" gorm:"type:varchar(50);not null"`
	Pinfl          int64     `json:"pinfl" gorm:"not null;uniqueIndex:ux_employee_pinfl_organization,priority:1"`
	HireDate       time.Time `json:"hire_date" gorm:"type:date;not null"`
	OrganizationID int64     `json:"organization_id" gorm:"not null;uniqueIndex:ux_employee_pinfl_organization,priority:2"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employee"
}

// CalculationType - категория расчётной записи
type CalculationType string

const (
	CalculationTypeBase      CalculationType = "BASE"
	CalculationTypeBonus     CalculationType = "BONUS"
	CalculationTypeVacation  CalculationType = "VACATION"
	CalculationTypeSickLeave CalculationType = "SICK_LEAVE"
)

// CalculationTable - расчётная запись сотрудника в организации за дату
type CalculationTable struct {
	BaseModel
	EmployeeID      int64           `json:"employee_id" gorm:"not null;index"`
	OrganizationID  int64           `json:"organization_id" gorm:"not null;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(19,2);not null"`
	Rate            float64         `json:"rate" gorm:"type:double precision;not null"`
	Date            time.Time       `json:"date" gorm:"type:date;not null;index"`
	CalculationType CalculationType `json:"calculation_type" gorm:"type:varchar(32);not null"`

	Employee     *Employee     `json:"-" gorm:"foreignKey:EmployeeID"`
	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName задаёт имя таблицы для GORM
func (CalculationTable) TableName() string {
	return "calculation_table"
}
