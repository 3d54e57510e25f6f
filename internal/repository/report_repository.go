package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/org-payroll-api/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ReportRepository - аналитические запросы по расчётным записям за календарный месяц.
// Запросы идут напрямую в БД, минуя SoftDeleteRepository.
type ReportRepository interface {
	GetAllRate(ctx context.Context, date time.Time, rate float64, page Page) ([]domain.RateTotal, int64, error)
	GetAllDifferentRegion(ctx context.Context, date time.Time) ([]domain.DifferentRegionTotal, error)
	GetAllChildOrganization(ctx context.Context, date time.Time, organizationID int64) ([]domain.ChildOrganizationRow, error)
	GetAllEmployeeInfo(ctx context.Context, date time.Time) ([]domain.EmployeeInfoRow, error)
}

const (
	rateFromQuery = `
		FROM calculation_table c
		JOIN employee e ON e.id = c.employee_id
		WHERE c.date >= ? AND c.date < ? AND c.rate > ?%s
		GROUP BY e.pinfl`

	differentRegionQuery = `
		WITH per_organization AS (
			SELECT SUM(c.amount) AS amount, e.pinfl, c.organization_id, r.name
			FROM calculation_table c
			JOIN employee e ON e.id = c.employee_id
			JOIN organization o ON o.id = c.organization_id
			JOIN region r ON r.id = o.region_id
			WHERE c.date >= ? AND c.date < ?%s
			GROUP BY e.pinfl, r.name, c.organization_id
		),
		per_region AS (
			SELECT COUNT(p.organization_id) AS count_organization, SUM(p.amount) AS amount, p.name, p.pinfl
			FROM per_organization p
			GROUP BY p.pinfl, p.name
		),
		spanning AS (
			SELECT pr.count_organization, pr.amount
			FROM per_region pr
			WHERE pr.pinfl IN (
				SELECT pinfl FROM per_region GROUP BY pinfl HAVING COUNT(pinfl) > 1
			)
		)
		SELECT COUNT(s.count_organization) AS all_organization, COALESCE(SUM(s.amount), 0) AS all_amount
		FROM spanning s`

	childOrganizationQuery = `
		WITH RECURSIVE descendants AS (
			SELECT id FROM organization WHERE parent_id = ?
			UNION
			SELECT o.id FROM organization o
			INNER JOIN descendants d ON o.parent_id = d.id
		),
		totals AS (
			SELECT e.id AS employee_id, e.first_name || ' ' || e.last_name AS full_name,
				o.id AS organization_id, o.name AS organization_name, o.parent_id,
				SUM(c.amount) AS amount, c.date
			FROM descendants d
			JOIN organization o ON o.id = d.id
			LEFT JOIN calculation_table c ON c.organization_id = o.id AND c.date >= ? AND c.date < ?%s
			LEFT JOIN employee e ON e.id = c.employee_id AND e.organization_id = o.id
			GROUP BY o.id, o.name, o.parent_id, e.id, e.first_name, e.last_name, c.date
		)
		SELECT employee_id, full_name, organization_id, organization_name, parent_id, amount, date
		FROM totals
		ORDER BY organization_id, employee_id, date`

	employeeInfoQuery = `
		WITH totals AS (
			SELECT c.employee_id, o.name AS organization_name, SUM(c.amount) AS amount, c.calculation_type, c.date
			FROM calculation_table c
			JOIN organization o ON o.id = c.organization_id
			WHERE c.date >= ? AND c.date < ?%s
			GROUP BY o.id, o.name, c.calculation_type, c.date, c.employee_id
		)
		SELECT e.first_name || ' ' || e.last_name AS full_name, t.organization_name, t.amount, t.calculation_type, t.date
		FROM totals t
		JOIN employee e ON e.id = t.employee_id
		ORDER BY t.date, full_name, t.calculation_type`
)

type reportRepository struct {
	db            *gorm.DB
	deletedFilter string
}

// NewReportRepository создаёт репозиторий отчётов.
// При excludeDeleted отчёты не учитывают удалённые расчётные записи.
func NewReportRepository(db *gorm.DB, excludeDeleted bool) ReportRepository {
	r := &reportRepository{db: db}
	if excludeDeleted {
		r.deletedFilter = " AND c.deleted = false"
	}
	return r
}

// MonthRange возвращает полуинтервал [первое число месяца даты, первое число следующего)
func MonthRange(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (r *reportRepository) GetAllRate(ctx context.Context, date time.Time, rate float64, page Page) ([]domain.RateTotal, int64, error) {
	from, to := MonthRange(date)
	db := conn(ctx, r.db)
	common := fmt.Sprintf(rateFromQuery, r.deletedFilter)

	var total int64
	countQuery := "SELECT COUNT(*) FROM (SELECT e.pinfl " + common + ") grouped"
	if err := db.Raw(countQuery, from, to, rate).Scan(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count all rate")
	}

	var result []domain.RateTotal
	query := "SELECT e.pinfl, SUM(c.rate) AS all_rate " + common + " ORDER BY e.pinfl LIMIT ? OFFSET ?"
	if err := db.Raw(query, from, to, rate, page.Size, page.Offset()).Scan(&result).Error; err != nil {
		return nil, 0, errors.Wrap(err, "all rate")
	}

	return result, total, nil
}

func (r *reportRepository) GetAllDifferentRegion(ctx context.Context, date time.Time) ([]domain.DifferentRegionTotal, error) {
	from, to := MonthRange(date)

	var result []domain.DifferentRegionTotal
	query := fmt.Sprintf(differentRegionQuery, r.deletedFilter)
	if err := conn(ctx, r.db).Raw(query, from, to).Scan(&result).Error; err != nil {
		return nil, errors.Wrap(err, "different region")
	}
	return result, nil
}

func (r *reportRepository) GetAllChildOrganization(ctx context.Context, date time.Time, organizationID int64) ([]domain.ChildOrganizationRow, error) {
	from, to := MonthRange(date)

	var result []domain.ChildOrganizationRow
	query := fmt.Sprintf(childOrganizationQuery, r.deletedFilter)
	if err := conn(ctx, r.db).Raw(query, organizationID, from, to).Scan(&result).Error; err != nil {
		return nil, errors.Wrapf(err, "child organizations of id %d", organizationID)
	}
	return result, nil
}

func (r *reportRepository) GetAllEmployeeInfo(ctx context.Context, date time.Time) ([]domain.EmployeeInfoRow, error) {
	from, to := MonthRange(date)

	var result []domain.EmployeeInfoRow
	query := fmt.Sprintf(employeeInfoQuery, r.deletedFilter)
	if err := conn(ctx, r.db).Raw(query, from, to).Scan(&result).Error; err != nil {
		return nil, errors.Wrap(err, "employee info")
	}
	return result, nil
}
