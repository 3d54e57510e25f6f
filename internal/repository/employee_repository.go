package repository

import (
	"context"

	"github.com/org-payroll-api/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	SoftDeleteRepository[domain.Employee]
	// FindByPinflAndOrganization ищет среди всех записей, включая удалённые
	FindByPinflAndOrganization(ctx context.Context, pinfl, organizationID int64) (*domain.Employee, error)
	ExistsByIDAndOrganization(ctx context.Context, id, organizationID int64) (bool, error)
}

type employeeRepository struct {
	*softDeleteRepository[domain.Employee, *domain.Employee]
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{newSoftDeleteRepository[domain.Employee](db)}
}

func (r *employeeRepository) FindByPinflAndOrganization(ctx context.Context, pinfl, organizationID int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).
		Where("pinfl = ? AND organization_id = ?", pinfl, organizationID).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "employee pinfl %d organization id %d", pinfl, organizationID)
		}
		return nil, errors.Wrapf(err, "find employee pinfl %d organization id %d", pinfl, organizationID)
	}
	return &emp, nil
}

func (r *employeeRepository) ExistsByIDAndOrganization(ctx context.Context, id, organizationID int64) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&domain.Employee{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check employee id %d in organization id %d", id, organizationID)
	}
	return count > 0, nil
}
