package service_test

import (
	"context"
	"testing"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"github.com/org-payroll-api/internal/repository"
	"github.com/org-payroll-api/internal/service"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	regions service.RegionService
	orgs    service.OrganizationService
	emps    service.EmployeeService
	calcs   service.CalculationTableService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&domain.Region{},
		&domain.Organization{},
		&domain.Employee{},
		&domain.CalculationTable{},
	))

	tx := repository.NewTxManager(db)
	regionRepo := repository.NewRegionRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	calcRepo := repository.NewCalculationTableRepository(db)
	reportRepo := repository.NewReportRepository(db, false)

	return &testEnv{
		db:      db,
		regions: service.NewRegionService(tx, regionRepo),
		orgs:    service.NewOrganizationService(tx, regionRepo, orgRepo),
		emps:    service.NewEmployeeService(tx, empRepo, orgRepo),
		calcs:   service.NewCalculationTableService(tx, calcRepo, empRepo, orgRepo, reportRepo),
	}
}

func (e *testEnv) region(t *testing.T, name string) *domain.Region {
	t.Helper()
	region, err := e.regions.Create(context.Background(), &dto.CreateRegionRequest{Name: name})
	require.NoError(t, err)
	return region
}

func (e *testEnv) org(t *testing.T, name string, regionID int64, parentID *int64) *domain.Organization {
	t.Helper()
	org, err := e.orgs.Create(context.Background(), &dto.CreateOrganizationRequest{
		Name:     name,
		RegionID: regionID,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return org
}

func (e *testEnv) employee(t *testing.T, pinfl, orgID int64) *domain.Employee {
	t.Helper()
	emp, err := e.emps.Create(context.Background(), &dto.CreateEmployeeRequest{
		FirstName:      "Ali",
		LastName:       "Valiev",
		Pinfl:          pinfl,
		HireDate:       "2023-01-10",
		OrganizationID: orgID,
	})
	require.NoError(t, err)
	return emp
}

func calcRequest(empID, orgID int64, amount string, rate float64) *dto.CreateCalculationTableRequest {
	a := decimal.RequireFromString(amount)
	return &dto.CreateCalculationTableRequest{
		EmployeeID:      empID,
		OrganizationID:  orgID,
		Amount:          &a,
		Rate:            &rate,
		Date:            "2024-03-15",
		CalculationType: "BASE",
	}
}

// requireCode проверяет, что err - бизнес-ошибка с нужным кодом
func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr), "expected *domain.Error, got %v", err)
	require.Equal(t, code, domainErr.Code, domainErr.Message)
}

func ptr[T any](v T) *T {
	return &v
}
