package repository

import (
	"github.com/org-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// CalculationTableRepository определяет интерфейс для работы с расчётными записями
type CalculationTableRepository interface {
	SoftDeleteRepository[domain.CalculationTable]
}

type calculationTableRepository struct {
	*softDeleteRepository[domain.CalculationTable, *domain.CalculationTable]
}

// NewCalculationTableRepository создаёт новый экземпляр репозитория
func NewCalculationTableRepository(db *gorm.DB) CalculationTableRepository {
	return &calculationTableRepository{newSoftDeleteRepository[domain.CalculationTable](db)}
}
