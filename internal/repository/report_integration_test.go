package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/migrations"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresDB подключается к TEST_DATABASE_DSN, накатывает миграции и очищает таблицы
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(sqlDB, "."))

	require.NoError(t, db.Exec(
		"TRUNCATE calculation_table, employee, organization, region RESTART IDENTITY CASCADE").Error)
	return db
}

type fixture struct {
	t   *testing.T
	ctx context.Context

	regions RegionRepository
	orgs    OrganizationRepository
	emps    EmployeeRepository
	calcs   CalculationTableRepository
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	return &fixture{
		t:       t,
		ctx:     context.Background(),
		regions: NewRegionRepository(db),
		orgs:    NewOrganizationRepository(db),
		emps:    NewEmployeeRepository(db),
		calcs:   NewCalculationTableRepository(db),
	}
}

func (f *fixture) region(name string) *domain.Region {
	region := &domain.Region{Name: name}
	require.NoError(f.t, f.regions.Create(f.ctx, region))
	return region
}

func (f *fixture) org(name string, regionID int64, parentID *int64) *domain.Organization {
	org := &domain.Organization{Name: name, RegionID: regionID, ParentID: parentID}
	require.NoError(f.t, f.orgs.Create(f.ctx, org))
	return org
}

func (f *fixture) employee(first, last string, pinfl, orgID int64) *domain.Employee {
	emp := &domain.Employee{
		FirstName:      first,
		LastName:       last,
		Pinfl:          pinfl,
		HireDate:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		OrganizationID: orgID,
	}
	require.NoError(f.t, f.emps.Create(f.ctx, emp))
	return emp
}

func (f *fixture) calc(emp *domain.Employee, orgID int64, amount string, rate float64, date time.Time) *domain.CalculationTable {
	calc := &domain.CalculationTable{
		EmployeeID:      emp.ID,
		OrganizationID:  orgID,
		Amount:          decimal.RequireFromString(amount),
		Rate:            rate,
		Date:            date,
		CalculationType: domain.CalculationTypeBase,
	}
	require.NoError(f.t, f.calcs.Create(f.ctx, calc))
	return calc
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestReportIntegration_ChildOrganizationRollup(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	region := f.region("Tashkent")
	a := f.org("A", region.ID, nil)
	b := f.org("B", region.ID, &a.ID)
	c := f.org("C", region.ID, &b.ID)

	empA := f.employee("Root", "Worker", 1, a.ID)
	empB := f.employee("Ali", "Valiev", 2, b.ID)
	empC := f.employee("Vali", "Aliev", 3, c.ID)

	f.calc(empA, a.ID, "50.00", 1, day(2024, 3, 10))
	f.calc(empB, b.ID, "100.00", 1, day(2024, 3, 15))
	f.calc(empC, c.ID, "200.00", 1, day(2024, 3, 20))
	f.calc(empC, c.ID, "999.00", 1, day(2024, 4, 1))

	repo := NewReportRepository(db, false)
	rows, err := repo.GetAllChildOrganization(context.Background(), day(2024, 3, 1), a.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, b.ID, rows[0].OrganizationID)
	require.NotNil(t, rows[0].EmployeeID)
	assert.Equal(t, empB.ID, *rows[0].EmployeeID)
	assert.Equal(t, "Ali Valiev", *rows[0].FullName)
	assert.True(t, decimal.RequireFromString("100").Equal(rows[0].Amount.Decimal))

	assert.Equal(t, c.ID, rows[1].OrganizationID)
	assert.True(t, decimal.RequireFromString("200").Equal(rows[1].Amount.Decimal))
}

func TestReportIntegration_ChildWithoutRowsStillListed(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	region := f.region("Tashkent")
	a := f.org("A", region.ID, nil)
	b := f.org("B", region.ID, &a.ID)

	rows, err := NewReportRepository(db, false).GetAllChildOrganization(context.Background(), day(2024, 3, 1), a.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].OrganizationID)
	assert.Nil(t, rows[0].EmployeeID)
	assert.False(t, rows[0].Amount.Valid)
}

func TestReportIntegration_RateThreshold(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	region := f.region("Tashkent")
	hq := f.org("HQ", region.ID, nil)
	emp := f.employee("Ali", "Valiev", 12345678901234, hq.ID)

	f.calc(emp, hq.ID, "10.00", 5, day(2024, 3, 1))
	f.calc(emp, hq.ID, "10.00", 7, day(2024, 3, 31))
	f.calc(emp, hq.ID, "10.00", 3, day(2024, 3, 15))
	f.calc(emp, hq.ID, "10.00", 9, day(2024, 2, 29))

	rows, total, err := NewReportRepository(db, false).
		GetAllRate(context.Background(), day(2024, 3, 1), 4.0, Page{Number: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(12345678901234), rows[0].Pinfl)
	assert.InDelta(t, 12.0, rows[0].AllRate, 1e-9)
}

func TestReportIntegration_DeletedRowsConfigurable(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	region := f.region("Tashkent")
	hq := f.org("HQ", region.ID, nil)
	emp := f.employee("Ali", "Valiev", 1, hq.ID)

	f.calc(emp, hq.ID, "10.00", 5, day(2024, 3, 1))
	trashed := f.calc(emp, hq.ID, "10.00", 7, day(2024, 3, 2))
	_, err := f.calcs.Trash(f.ctx, trashed.ID)
	require.NoError(t, err)

	page := Page{Number: 0, Size: 20}

	rows, _, err := NewReportRepository(db, false).GetAllRate(f.ctx, day(2024, 3, 1), 0, page)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 12.0, rows[0].AllRate, 1e-9)

	rows, _, err = NewReportRepository(db, true).GetAllRate(f.ctx, day(2024, 3, 1), 0, page)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 5.0, rows[0].AllRate, 1e-9)
}

func TestReportIntegration_DifferentRegion(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	tashkent := f.region("Tashkent")
	samarkand := f.region("Samarkand")
	hq := f.org("HQ", tashkent.ID, nil)
	branch := f.org("Branch", samarkand.ID, nil)

	// один человек числится в двух регионах, другой только в одном
	mover1 := f.employee("Ali", "Valiev", 111, hq.ID)
	mover2 := f.employee("Ali", "Valiev", 111, branch.ID)
	stayer := f.employee("Vali", "Aliev", 222, hq.ID)

	f.calc(mover1, hq.ID, "100.00", 1, day(2024, 3, 5))
	f.calc(mover2, branch.ID, "50.50", 1, day(2024, 3, 6))
	f.calc(stayer, hq.ID, "70.00", 1, day(2024, 3, 7))

	rows, err := NewReportRepository(db, false).GetAllDifferentRegion(context.Background(), day(2024, 3, 1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].AllOrganization)
	assert.True(t, decimal.RequireFromString("150.50").Equal(rows[0].AllAmount))
}

func TestReportIntegration_EmployeeInfo(t *testing.T) {
	db := newPostgresDB(t)
	f := newFixture(t, db)

	region := f.region("Tashkent")
	hq := f.org("HQ", region.ID, nil)
	emp := f.employee("Ali", "Valiev", 12345678901234, hq.ID)
	f.calc(emp, hq.ID, "100.00", 1.0, day(2024, 3, 15))

	rows, err := NewReportRepository(db, false).GetAllEmployeeInfo(context.Background(), day(2024, 3, 1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ali Valiev", rows[0].FullName)
	assert.Equal(t, "HQ", rows[0].OrganizationName)
	assert.True(t, decimal.RequireFromString("100.00").Equal(rows[0].Amount))
	assert.Equal(t, domain.CalculationTypeBase, rows[0].CalculationType)
	assert.True(t, day(2024, 3, 15).Equal(rows[0].Date))
}
