package service

import (
	"context"
	"strings"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
)

// RegionService определяет интерфейс бизнес-логики для регионов
type RegionService interface {
	Create(ctx context.Context, req *dto.CreateRegionRequest) (*domain.Region, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRegionRequest) (*domain.Region, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Region, error)
	GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Region, int64, error)
}

type regionService struct {
	tx         repository.TxManager
	regionRepo repository.RegionRepository
}

// NewRegionService создаёт новый экземпляр сервиса
func NewRegionService(tx repository.TxManager, regionRepo repository.RegionRepository) RegionService {
	return &regionService{
		tx:         tx,
		regionRepo: regionRepo,
	}
}

func (s *regionService) Create(ctx context.Context, req *dto.CreateRegionRequest) (*domain.Region, error) {
	name := strings.TrimSpace(req.Name)

	var region *domain.Region
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.regionRepo.FindByName(ctx, name)
		if err != nil && !isNotFound(err) {
			return err
		}

		if existing != nil {
			if !existing.Deleted {
				return domain.RegionExists(name)
			}
			// Удалённый регион с тем же именем восстанавливаем, а не создаём заново
			existing.Deleted = false
			region = existing
			return s.regionRepo.Save(ctx, region)
		}

		region = &domain.Region{Name: name}
		return s.regionRepo.Create(ctx, region)
	})
	if err != nil {
		return nil, err
	}

	return region, nil
}

func (s *regionService) Update(ctx context.Context, id int64, req *dto.UpdateRegionRequest) (*domain.Region, error) {
	var region *domain.Region
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		region, err = s.regionRepo.FindByIDNotDeleted(ctx, id)
		if err != nil {
			return mapNotFound(err, domain.RegionNotFound(id))
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)

			existing, err := s.regionRepo.FindByName(ctx, name)
			if err != nil && !isNotFound(err) {
				return err
			}
			if existing != nil && existing.ID != region.ID {
				if !existing.Deleted {
					return domain.RegionExists(name)
				}
				// Имя занято удалённым регионом
				return domain.RegionNameInvalid(name)
			}

			region.Name = name
		}

		return s.regionRepo.Save(ctx, region)
	})
	if err != nil {
		return nil, err
	}

	return region, nil
}

func (s *regionService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trash[domain.Region](ctx, s.regionRepo, id, domain.RegionNotFound)
	})
}

func (s *regionService) DeleteBatch(ctx context.Context, ids []int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trashAll[domain.Region](ctx, s.regionRepo, ids, domain.RegionNotFound)
	})
}

func (s *regionService) GetByID(ctx context.Context, id int64) (*domain.Region, error) {
	region, err := s.regionRepo.FindByIDNotDeleted(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, domain.RegionNotFound(id))
	}
	return region, nil
}

func (s *regionService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Region, int64, error) {
	return s.regionRepo.FindPageNotDeleted(ctx, toPage(query))
}
