package service

import (
	"context"
	"time"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
)

// CalculationTableService определяет интерфейс бизнес-логики для расчётных записей и отчётов по ним
type CalculationTableService interface {
	Create(ctx context.Context, req *dto.CreateCalculationTableRequest) (*domain.CalculationTable, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCalculationTableRequest) (*domain.CalculationTable, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.CalculationTable, error)
	GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.CalculationTable, int64, error)

	GetAllRate(ctx context.Context, date time.Time, rate float64, query *dto.PageQuery) ([]domain.RateTotal, int64, error)
	GetAllDifferentRegion(ctx context.Context, date time.Time) ([]domain.DifferentRegionTotal, error)
	GetAllChildOrganization(ctx context.Context, date time.Time, organizationID int64) ([]domain.ChildOrganizationRow, error)
	GetAllEmployeeInfo(ctx context.Context, date time.Time) ([]domain.EmployeeInfoRow, error)
}

type calculationTableService struct {
	tx         repository.TxManager
	calcRepo   repository.CalculationTableRepository
	empRepo    repository.EmployeeRepository
	orgRepo    repository.OrganizationRepository
	reportRepo repository.ReportRepository
}

// NewCalculationTableService создаёт новый экземпляр сервиса
func NewCalculationTableService(
	tx repository.TxManager,
	calcRepo repository.CalculationTableRepository,
	empRepo repository.EmployeeRepository,
	orgRepo repository.OrganizationRepository,
	reportRepo repository.ReportRepository,
) CalculationTableService {
	return &calculationTableService{
		tx:         tx,
		calcRepo:   calcRepo,
		empRepo:    empRepo,
		orgRepo:    orgRepo,
		reportRepo: reportRepo,
	}
}

func (s *calculationTableService) Create(ctx context.Context, req *dto.CreateCalculationTableRequest) (*domain.CalculationTable, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	calc := &domain.CalculationTable{
		EmployeeID:      req.EmployeeID,
		OrganizationID:  req.OrganizationID,
		Amount:          *req.Amount,
		Rate:            *req.Rate,
		Date:            date,
		CalculationType: domain.CalculationType(req.CalculationType),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.empRepo.FindByIDNotDeleted(ctx, req.EmployeeID); err != nil {
			return mapNotFound(err, domain.EmployeeNotFound(req.EmployeeID))
		}
		if _, err := s.orgRepo.FindByIDNotDeleted(ctx, req.OrganizationID); err != nil {
			return mapNotFound(err, domain.OrganizationNotFound(req.OrganizationID))
		}

		connected, err := s.empRepo.ExistsByIDAndOrganization(ctx, req.EmployeeID, req.OrganizationID)
		if err != nil {
			return err
		}
		if !connected {
			return domain.OrganizationNotConnected(req.OrganizationID, req.EmployeeID)
		}

		return s.calcRepo.Create(ctx, calc)
	})
	if err != nil {
		return nil, err
	}

	return calc, nil
}

func (s *calculationTableService) Update(ctx context.Context, id int64, req *dto.UpdateCalculationTableRequest) (*domain.CalculationTable, error) {
	var calc *domain.CalculationTable
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		calc, err = s.calcRepo.FindByIDNotDeleted(ctx, id)
		if err != nil {
			return mapNotFound(err, domain.CalculationTableNotFound(id))
		}

		if req.EmployeeID != nil {
			if _, err := s.empRepo.FindByIDNotDeleted(ctx, *req.EmployeeID); err != nil {
				return mapNotFound(err, domain.EmployeeNotFound(*req.EmployeeID))
			}
			calc.EmployeeID = *req.EmployeeID
		}

		// Организация ищется по переданному id, а не по id самой записи
		if req.OrganizationID != nil {
			if _, err := s.orgRepo.FindByIDNotDeleted(ctx, *req.OrganizationID); err != nil {
				return mapNotFound(err, domain.OrganizationNotFound(*req.OrganizationID))
			}
			calc.OrganizationID = *req.OrganizationID
		}

		if req.Amount != nil {
			calc.Amount = *req.Amount
		}
		if req.Rate != nil {
			calc.Rate = *req.Rate
		}
		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				return err
			}
			calc.Date = date
		}
		if req.CalculationType != nil {
			calc.CalculationType = domain.CalculationType(*req.CalculationType)
		}

		return s.calcRepo.Save(ctx, calc)
	})
	if err != nil {
		return nil, err
	}

	return calc, nil
}

func (s *calculationTableService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trash[domain.CalculationTable](ctx, s.calcRepo, id, domain.CalculationTableNotFound)
	})
}

func (s *calculationTableService) DeleteBatch(ctx context.Context, ids []int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trashAll[domain.CalculationTable](ctx, s.calcRepo, ids, domain.CalculationTableNotFound)
	})
}

func (s *calculationTableService) GetByID(ctx context.Context, id int64) (*domain.CalculationTable, error) {
	calc, err := s.calcRepo.FindByIDNotDeleted(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, domain.CalculationTableNotFound(id))
	}
	return calc, nil
}

func (s *calculationTableService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.CalculationTable, int64, error) {
	return s.calcRepo.FindPageNotDeleted(ctx, toPage(query))
}

func (s *calculationTableService) GetAllRate(ctx context.Context, date time.Time, rate float64, query *dto.PageQuery) ([]domain.RateTotal, int64, error) {
	return s.reportRepo.GetAllRate(ctx, date, rate, toPage(query))
}

func (s *calculationTableService) GetAllDifferentRegion(ctx context.Context, date time.Time) ([]domain.DifferentRegionTotal, error) {
	return s.reportRepo.GetAllDifferentRegion(ctx, date)
}

// GetAllChildOrganization строит свёртку по всем потомкам организации, сама организация в отчёт не входит
func (s *calculationTableService) GetAllChildOrganization(ctx context.Context, date time.Time, organizationID int64) ([]domain.ChildOrganizationRow, error) {
	if _, err := s.orgRepo.FindByIDNotDeleted(ctx, organizationID); err != nil {
		return nil, mapNotFound(err, domain.OrganizationNotFound(organizationID))
	}
	return s.reportRepo.GetAllChildOrganization(ctx, date, organizationID)
}

func (s *calculationTableService) GetAllEmployeeInfo(ctx context.Context, date time.Time) ([]domain.EmployeeInfoRow, error) {
	return s.reportRepo.GetAllEmployeeInfo(ctx, date)
}
