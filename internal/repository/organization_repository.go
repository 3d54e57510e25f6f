package repository

import (
	"context"
	"slices"

	"github.com/org-payroll-api/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OrganizationRepository определяет интерфейс для работы с организациями
type OrganizationRepository interface {
	SoftDeleteRepository[domain.Organization]
	IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error)
	GetAllDescendantIDs(ctx context.Context, id int64) ([]int64, error)
}

type organizationRepository struct {
	*softDeleteRepository[domain.Organization, *domain.Organization]
}

// NewOrganizationRepository создаёт новый экземпляр репозитория
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{newSoftDeleteRepository[domain.Organization](db)}
}

func (r *organizationRepository) IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error) {
	descendants, err := r.GetAllDescendantIDs(ctx, ancestorID)
	if err != nil {
		return false, err
	}
	return slices.Contains(descendants, descendantID), nil
}

// GetAllDescendantIDs возвращает id всех потомков, включая удалённые.
// UNION вместо UNION ALL не даёт зациклиться на испорченных данных.
func (r *organizationRepository) GetAllDescendantIDs(ctx context.Context, id int64) ([]int64, error) {
	const query = `
		WITH RECURSIVE descendants AS (
			SELECT id FROM organization WHERE parent_id = ?
			UNION
			SELECT o.id FROM organization o
			INNER JOIN descendants d ON o.parent_id = d.id
		)
		SELECT id FROM descendants`

	rows, err := conn(ctx, r.db).Raw(query, id).Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "descendants of organization id %d", id)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var descendantID int64
		if err := rows.Scan(&descendantID); err != nil {
			return nil, errors.Wrap(err, "scan descendant id")
		}
		result = append(result, descendantID)
	}

	return result, rows.Err()
}
