package contract

import (
	"context"
	"testing"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	contracterrors "github.com/SalimDiallo/LouraBackend/internal/contract/errors"
	"github.com/SalimDiallo/LouraBackend/internal/employee"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeContractRepo struct {
	contracts map[uuid.UUID]*Contract
	// employee -> org, stands in for the employees table join
	employeeOrg map[uuid.UUID]uuid.UUID
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{
		contracts:   map[uuid.UUID]*Contract{},
		employeeOrg: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeContractRepo) inScope(orgIDs []uuid.UUID, employeeID uuid.UUID) bool {
	org, ok := f.employeeOrg[employeeID]
	if !ok {
		return false
	}
	for _, id := range orgIDs {
		if id == org {
			return true
		}
	}
	return false
}

func (f *fakeContractRepo) Create(ctx context.Context, c *Contract) error {
	f.contracts[c.ID] = c
	return nil
}

func (f *fakeContractRepo) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Contract, error) {
	c, ok := f.contracts[id]
	if !ok || !f.inScope(orgIDs, c.EmployeeID) {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContractRepo) List(ctx context.Context, orgIDs []uuid.UUID, filter ListFilter) ([]Contract, int64, error) {
	var out []Contract
	for _, c := range f.contracts {
		if !f.inScope(orgIDs, c.EmployeeID) {
			continue
		}
		if filter.EmployeeID != nil && c.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeContractRepo) Update(ctx context.Context, c *Contract) error {
	f.contracts[c.ID] = c
	return nil
}

func (f *fakeContractRepo) Delete(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) error {
	c, ok := f.contracts[id]
	if !ok || !f.inScope(orgIDs, c.EmployeeID) {
		return gorm.ErrRecordNotFound
	}
	delete(f.contracts, id)
	return nil
}

type fakeEmployeeDirectory struct {
	employeeOrg map[uuid.UUID]uuid.UUID
}

func (f *fakeEmployeeDirectory) WithTx(tx *gorm.DB) employee.Repository                 { return f }
func (f *fakeEmployeeDirectory) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeDirectory) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*employee.Employee, error) {
	org, ok := f.employeeOrg[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, orgID := range orgIDs {
		if orgID == org {
			return &employee.Employee{ID: id, OrganizationID: org}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeDirectory) FindByEmailAndOrg(ctx context.Context, orgID uuid.UUID, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeDirectory) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeDirectory) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeDirectory) HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	return false, nil
}
func (f *fakeEmployeeDirectory) CustomPermissionCodes(ctx context.Context, employeeID uuid.UUID) ([]string, error) {
	return nil, nil
}
func (f *fakeEmployeeDirectory) AddCustomPermission(ctx context.Context, cp *employee.CustomPermission) error {
	return nil
}
func (f *fakeEmployeeDirectory) RemoveCustomPermission(ctx context.Context, employeeID uuid.UUID, code string) error {
	return nil
}

type contractFixture struct {
	svc     Service
	repo    *fakeContractRepo
	orgID   uuid.UUID
	aliceID uuid.UUID
	bobID   uuid.UUID
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()
	repo := newFakeContractRepo()
	orgID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()
	repo.employeeOrg[aliceID] = orgID
	repo.employeeOrg[bobID] = orgID

	dir := &fakeEmployeeDirectory{employeeOrg: repo.employeeOrg}
	return &contractFixture{
		svc:     NewService(repo, dir),
		repo:    repo,
		orgID:   orgID,
		aliceID: aliceID,
		bobID:   bobID,
	}
}

func (fx *contractFixture) create(t *testing.T, employeeID uuid.UUID) ContractResponse {
	t.Helper()
	resp, err := fx.svc.Create(context.Background(), fx.orgID, CreateContractRequest{
		EmployeeID:   employeeID.String(),
		ContractType: TypePermanent,
		StartDate:    "2026-01-01",
		BaseSalary:   52000,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateDefaultsCurrencyAndPeriod(t *testing.T) {
	fx := newContractFixture(t)

	resp := fx.create(t, fx.aliceID)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, PeriodMonthly, resp.SalaryPeriod)
	assert.True(t, resp.IsActive)
}

func TestCreateRejectsForeignEmployee(t *testing.T) {
	fx := newContractFixture(t)

	_, err := fx.svc.Create(context.Background(), uuid.New(), CreateContractRequest{
		EmployeeID:   fx.aliceID.String(),
		ContractType: TypePermanent,
		StartDate:    "2026-01-01",
		BaseSalary:   52000,
	})
	assert.ErrorIs(t, err, contracterrors.ErrEmployeeNotFound)
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	fx := newContractFixture(t)
	end := "2025-12-01"

	_, err := fx.svc.Create(context.Background(), fx.orgID, CreateContractRequest{
		EmployeeID:   fx.aliceID.String(),
		ContractType: TypeFixedTerm,
		StartDate:    "2026-01-01",
		EndDate:      &end,
		BaseSalary:   52000,
	})
	assert.ErrorIs(t, err, contracterrors.ErrInvalidDateRange)
}

func TestGetAllNarrowsToOwnRowsForPlainStaff(t *testing.T) {
	fx := newContractFixture(t)
	fx.create(t, fx.aliceID)
	fx.create(t, fx.bobID)

	scope := []uuid.UUID{fx.orgID}

	alice := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeEmployee}
	own, total, err := fx.svc.GetAll(context.Background(), alice, scope, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, own, 1)
	assert.Equal(t, fx.aliceID, own[0].EmployeeID)

	hr := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeHRAdmin}
	all, total, err := fx.svc.GetAll(context.Background(), hr, scope, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestGetByIDHidesColleaguesContract(t *testing.T) {
	fx := newContractFixture(t)
	bobs := fx.create(t, fx.bobID)

	alice := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeEmployee}
	_, err := fx.svc.GetByID(context.Background(), alice, []uuid.UUID{fx.orgID}, bobs.ID.String())
	assert.ErrorIs(t, err, contracterrors.ErrContractNotFound)

	hr := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeHRAdmin}
	got, err := fx.svc.GetByID(context.Background(), hr, []uuid.UUID{fx.orgID}, bobs.ID.String())
	require.NoError(t, err)
	assert.Equal(t, fx.bobID, got.EmployeeID)
}

func TestUpdateRejectsEndBeforeStoredStart(t *testing.T) {
	fx := newContractFixture(t)
	created := fx.create(t, fx.aliceID)
	end := "2025-06-30"

	_, err := fx.svc.Update(context.Background(), []uuid.UUID{fx.orgID}, created.ID.String(), UpdateContractRequest{
		EndDate: &end,
	})
	assert.ErrorIs(t, err, contracterrors.ErrInvalidDateRange)

	good := "2026-12-31"
	updated, err := fx.svc.Update(context.Background(), []uuid.UUID{fx.orgID}, created.ID.String(), UpdateContractRequest{
		EndDate: &good,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, good, *updated.EndDate)
}
