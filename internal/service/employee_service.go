package service

import (
	"context"
	"strings"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Employee, int64, error)
}

type employeeService struct {
	tx      repository.TxManager
	empRepo repository.EmployeeRepository
	orgRepo repository.OrganizationRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	tx repository.TxManager,
	empRepo repository.EmployeeRepository,
	orgRepo repository.OrganizationRepository,
) EmployeeService {
	return &employeeService{
		tx:      tx,
		empRepo: empRepo,
		orgRepo: orgRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	var emp *domain.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.orgRepo.FindByIDNotDeleted(ctx, req.OrganizationID); err != nil {
			return mapNotFound(err, domain.OrganizationNotFound(req.OrganizationID))
		}

		existing, err := s.empRepo.FindByPinflAndOrganization(ctx, req.Pinfl, req.OrganizationID)
		if err != nil && !isNotFound(err) {
			return err
		}

		if existing != nil {
			if !existing.Deleted {
				return domain.PinflOrganizationExists(req.Pinfl, req.OrganizationID)
			}
			// Восстанавливаем удалённого сотрудника с данными из запроса
			existing.Deleted = false
			existing.FirstName = strings.TrimSpace(req.FirstName)
			existing.LastName = strings.TrimSpace(req.LastName)
			existing.HireDate = hireDate
			emp = existing
			return s.empRepo.Save(ctx, emp)
		}

		emp = &domain.Employee{
			FirstName:      strings.TrimSpace(req.FirstName),
			LastName:       strings.TrimSpace(req.LastName),
			Pinfl:          req.Pinfl,
			HireDate:       hireDate,
			OrganizationID: req.OrganizationID,
		}
		return s.empRepo.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	var emp *domain.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		emp, err = s.empRepo.FindByIDNotDeleted(ctx, id)
		if err != nil {
			return mapNotFound(err, domain.EmployeeNotFound(id))
		}

		// ПИНФЛ и организация меняются только парой
		if req.OrganizationID != nil && req.Pinfl != nil &&
			(*req.OrganizationID != emp.OrganizationID || *req.Pinfl != emp.Pinfl) {
			orgID, pinfl := *req.OrganizationID, *req.Pinfl

			if _, err := s.orgRepo.FindByIDNotDeleted(ctx, orgID); err != nil {
				return mapNotFound(err, domain.OrganizationNotFound(orgID))
			}

			existing, err := s.empRepo.FindByPinflAndOrganization(ctx, pinfl, orgID)
			if err != nil && !isNotFound(err) {
				return err
			}
			if existing != nil {
				if existing.Deleted {
					return domain.PinflOrganizationInvalid(pinfl, orgID)
				}
				return domain.PinflOrganizationExists(pinfl, orgID)
			}

			emp.OrganizationID = orgID
			emp.Pinfl = pinfl
		}

		if req.FirstName != nil {
			emp.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			emp.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.HireDate != nil {
			hireDate, err := parseDate(*req.HireDate)
			if err != nil {
				return err
			}
			emp.HireDate = hireDate
		}

		return s.empRepo.Save(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trash[domain.Employee](ctx, s.empRepo, id, domain.EmployeeNotFound)
	})
}

func (s *employeeService) DeleteBatch(ctx context.Context, ids []int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return trashAll[domain.Employee](ctx, s.empRepo, ids, domain.EmployeeNotFound)
	})
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.FindByIDNotDeleted(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, domain.EmployeeNotFound(id))
	}
	return emp, nil
}

func (s *employeeService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Employee, int64, error) {
	return s.empRepo.FindPageNotDeleted(ctx, toPage(query))
}
