package repository

import (
	"context"

	"github.com/org-payroll-api/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegionRepository определяет интерфейс для работы с регионами
type RegionRepository interface {
	SoftDeleteRepository[domain.Region]
	// FindByName ищет регион по имени среди всех записей, включая удалённые
	FindByName(ctx context.Context, name string) (*domain.Region, error)
}

type regionRepository struct {
	*softDeleteRepository[domain.Region, *domain.Region]
}

// NewRegionRepository создаёт новый экземпляр репозитория
func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{newSoftDeleteRepository[domain.Region](db)}
}

func (r *regionRepository) FindByName(ctx context.Context, name string) (*domain.Region, error) {
	var region domain.Region
	err := conn(ctx, r.db).Where("name = ?", name).First(&region).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "region name %q", name)
		}
		return nil, errors.Wrapf(err, "find region by name %q", name)
	}
	return &region, nil
}
