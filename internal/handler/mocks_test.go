package handler_test

import (
	"context"
	"sort"
	"time"

	"github.com/org-payroll-api/internal/domain"
	"github.com/org-payroll-api/internal/dto"
	"gorm.io/gorm"
)

type mockRegionService struct {
	regions map[int64]*domain.Region
	nextID  int64
	// failWith подменяет результат любой операции
	failWith error
}

func newMockRegionService() *mockRegionService {
	return &mockRegionService{regions: make(map[int64]*domain.Region), nextID: 1}
}

func (s *mockRegionService) Create(ctx context.Context, req *dto.CreateRegionRequest) (*domain.Region, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, r := range s.regions {
		if r.Name == req.Name && !r.Deleted {
			return nil, domain.RegionExists(req.Name)
		}
	}
	region := &domain.Region{Name: req.Name}
	region.ID = s.nextID
	region.CreatedBy = domain.ActorFromContext(ctx)
	s.nextID++
	s.regions[region.ID] = region
	return region, nil
}

func (s *mockRegionService) Update(ctx context.Context, id int64, req *dto.UpdateRegionRequest) (*domain.Region, error) {
	region, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		region.Name = *req.Name
	}
	return region, nil
}

func (s *mockRegionService) Delete(ctx context.Context, id int64) error {
	region, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	region.Deleted = true
	return nil
}

func (s *mockRegionService) DeleteBatch(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
	}
	for _, id := range ids {
		s.regions[id].Deleted = true
	}
	return nil
}

func (s *mockRegionService) GetByID(ctx context.Context, id int64) (*domain.Region, error) {
	if region, ok := s.regions[id]; ok && !region.Deleted {
		return region, nil
	}
	return nil, domain.RegionNotFound(id)
}

func (s *mockRegionService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Region, int64, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}
	var all []domain.Region
	for _, r := range s.regions {
		if !r.Deleted {
			all = append(all, *r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	from := min(query.Page*query.Size, len(all))
	to := min(from+query.Size, len(all))
	return all[from:to], total, nil
}

type mockOrganizationService struct {
	orgs map[int64]*domain.Organization
}

func (s *mockOrganizationService) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*domain.Organization, error) {
	org := &domain.Organization{Name: req.Name, RegionID: req.RegionID, ParentID: req.ParentID}
	org.ID = int64(len(s.orgs) + 1)
	s.orgs[org.ID] = org
	return org, nil
}

func (s *mockOrganizationService) Update(ctx context.Context, id int64, req *dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	org, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ParentID != nil && *req.ParentID == id {
		return nil, domain.OrganizationParentInvalid(id, *req.ParentID)
	}
	if req.Name != nil {
		org.Name = *req.Name
	}
	return org, nil
}

func (s *mockOrganizationService) Delete(ctx context.Context, id int64) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *mockOrganizationService) DeleteBatch(ctx context.Context, ids []int64) error {
	return nil
}

func (s *mockOrganizationService) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	if org, ok := s.orgs[id]; ok {
		return org, nil
	}
	return nil, domain.OrganizationNotFound(id)
}

func (s *mockOrganizationService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Organization, int64, error) {
	return nil, 0, nil
}

type mockEmployeeService struct {
	emps map[int64]*domain.Employee
}

func (s *mockEmployeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	for _, e := range s.emps {
		if e.Pinfl == req.Pinfl && e.OrganizationID == req.OrganizationID {
			// гонка двух запросов, которую поймал уникальный индекс
			return nil, gorm.ErrDuplicatedKey
		}
	}
	hireDate, err := time.Parse(dto.DateLayout, req.HireDate)
	if err != nil {
		return nil, err
	}
	emp := &domain.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Pinfl:          req.Pinfl,
		HireDate:       hireDate,
		OrganizationID: req.OrganizationID,
	}
	emp.ID = int64(len(s.emps) + 1)
	s.emps[emp.ID] = emp
	return emp, nil
}

func (s *mockEmployeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	return s.GetByID(ctx, id)
}

func (s *mockEmployeeService) Delete(ctx context.Context, id int64) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *mockEmployeeService) DeleteBatch(ctx context.Context, ids []int64) error {
	return nil
}

func (s *mockEmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := s.emps[id]; ok {
		return emp, nil
	}
	return nil, domain.EmployeeNotFound(id)
}

func (s *mockEmployeeService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.Employee, int64, error) {
	return nil, 0, nil
}

type mockCalculationTableService struct {
	lastDate  time.Time
	lastRate  float64
	lastOrgID int64
	lastPage  dto.PageQuery
}

func (s *mockCalculationTableService) Create(ctx context.Context, req *dto.CreateCalculationTableRequest) (*domain.CalculationTable, error) {
	if req.OrganizationID != 1 {
		return nil, domain.OrganizationNotConnected(req.OrganizationID, req.EmployeeID)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
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
	calc.ID = 1
	return calc, nil
}

func (s *mockCalculationTableService) Update(ctx context.Context, id int64, req *dto.UpdateCalculationTableRequest) (*domain.CalculationTable, error) {
	return nil, domain.CalculationTableNotFound(id)
}

func (s *mockCalculationTableService) Delete(ctx context.Context, id int64) error {
	return domain.CalculationTableNotFound(id)
}

func (s *mockCalculationTableService) DeleteBatch(ctx context.Context, ids []int64) error {
	return nil
}

func (s *mockCalculationTableService) GetByID(ctx context.Context, id int64) (*domain.CalculationTable, error) {
	return nil, domain.CalculationTableNotFound(id)
}

func (s *mockCalculationTableService) GetAll(ctx context.Context, query *dto.PageQuery) ([]domain.CalculationTable, int64, error) {
	return nil, 0, nil
}

func (s *mockCalculationTableService) GetAllRate(ctx context.Context, date time.Time, rate float64, query *dto.PageQuery) ([]domain.RateTotal, int64, error) {
	s.lastDate, s.lastRate, s.lastPage = date, rate, *query
	return []domain.RateTotal{{Pinfl: 12345678901234, AllRate: 12}}, 1, nil
}

func (s *mockCalculationTableService) GetAllDifferentRegion(ctx context.Context, date time.Time) ([]domain.DifferentRegionTotal, error) {
	s.lastDate = date
	return []domain.DifferentRegionTotal{{AllOrganization: 0}}, nil
}

func (s *mockCalculationTableService) GetAllChildOrganization(ctx context.Context, date time.Time, organizationID int64) ([]domain.ChildOrganizationRow, error) {
	s.lastDate, s.lastOrgID = date, organizationID
	empID, name := int64(7), "Ali Valiev"
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []domain.ChildOrganizationRow{
		{EmployeeID: &empID, FullName: &name, OrganizationID: 2, OrganizationName: "B", ParentID: &organizationID, Date: &day},
		{OrganizationID: 3, OrganizationName: "C"},
	}, nil
}

func (s *mockCalculationTableService) GetAllEmployeeInfo(ctx context.Context, date time.Time) ([]domain.EmployeeInfoRow, error) {
	s.lastDate = date
	return nil, nil
}
