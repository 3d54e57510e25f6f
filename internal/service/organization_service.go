package service

import (
	"context"
	"strings"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
)

// OrganizationService определяет интерфейс бизнес-логики для организаций
type OrganizationService interface {
	Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*domain.Organization, error)
	Update(ctx context.Context, id int64, req *dto.UpdateOrganizationRequest) (*domain.Organization, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Organization, int64, error)
}

type organizationService struct {
	tx         repository.TxManager
	regionRepo repository.RegionRepository
	orgRepo    repository.OrganizationRepository
}

// NewOrganizationService создаёт новый экземпляр сервиса
func NewOrganizationService(
	tx repository.TxManager,
	regionRepo repository.RegionRepository,
	orgRepo repository.OrganizationRepository,
) OrganizationService {
	return &organizationService{
		tx:         tx,
		regionRepo: regionRepo,
		orgRepo:    orgRepo,
	}
}

func (s *organizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*domain.Organization, error) {
	org := &domain.Organization{
		Name:     strings.TrimSpace(req.Name),
		RegionID: req.RegionID,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.regionRepo.FindByIDNotDeleted(ctx, req.RegionID); err != nil {
			return mapNotFound(err, domain.RegionNotFound(req.RegionID))
		}

		if req.ParentID != nil {
			if _, err := s.orgRepo.FindByIDNotDeleted(ctx, *req.ParentID); err != nil {
				return mapNotFound(err, domain.OrganizationNotFound(*req.ParentID))
			}
			parentID := *req.ParentID
			org.ParentID = &parentID
		}

		return s.orgRepo.Create(ctx, org)
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) Update(ctx context.Context, id int64, req *dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	var org *domain.Organization
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		org, err = s.orgRepo.FindByIDNotDeleted(ctx, id)
		if err != nil {
			return mapNotFound(err, domain.OrganizationNotFound(id))
		}

		if req.RegionID != nil {
			if _, err := s.regionRepo.FindByIDNotDeleted(ctx, *req.RegionID); err != nil {
				return mapNotFound(err, domain.RegionNotFound(*req.RegionID))
			}
			org.RegionID = *req.RegionID
		}

		if req.Name != nil {
			org.Name = strings.TrimSpace(*req.Name)
		}

		if req.ParentID != nil {
			newParentID := *req.ParentID

			if _, err := s.orgRepo.FindByIDNotDeleted(ctx, newParentID); err != nil {
				return mapNotFound(err, domain.OrganizationNotFound(newParentID))
			}

			// Нельзя стать родителем самому себе или своему предку:
			// цикл сломает рекурсивный отчёт по дочерним организациям
			if newParentID == id {
				return domain.OrganizationParentInvalid(id, newParentID)
			}
			isDescendant, err := s.orgRepo.IsDescendant(ctx, id, newParentID)
			if err != nil {
				return err
			}
			if isDescendant {
				return domain.OrganizationParentInvalid(id, newParentID)
			}

			org.ParentID = &newParentID
		}

		return s.orgRepo.Save(ctx, org)
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trash[domain.Organization](ctx, s.orgRepo, id, domain.OrganizationNotFound)
	})
}

func (s *organizationService) DeleteBatch(ctx context.Context, ids []int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trashAll[domain.Organization](ctx, s.orgRepo, ids, domain.OrganizationNotFound)
	})
}

func (s *organizationService) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	org, err := s.orgRepo.FindByIDNotDeleted(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, domain.OrganizationNotFound(id))
	}
	return org, nil
}

func (s *organizationService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Organization, int64, error) {
	return s.orgRepo.FindPageNotDeleted(ctx, toPage(query))
}
