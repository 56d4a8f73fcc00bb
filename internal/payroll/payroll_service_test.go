package payroll

import (
	"context"
	"testing"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	"github.com/SalimDiallo/LouraBackend/internal/employee"
	payrollerrors "github.com/SalimDiallo/LouraBackend/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePayrollRepo struct {
	periods     map[uuid.UUID]*PayrollPeriod
	payslips    map[uuid.UUID]*Payslip
	employeeOrg map[uuid.UUID]uuid.UUID
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		periods:     map[uuid.UUID]*PayrollPeriod{},
		payslips:    map[uuid.UUID]*Payslip{},
		employeeOrg: map[uuid.UUID]uuid.UUID{},
	}
}

func inOrg(orgIDs []uuid.UUID, org uuid.UUID) bool {
	for _, id := range orgIDs {
		if id == org {
			return true
		}
	}
	return false
}

func (f *fakePayrollRepo) CreatePeriod(ctx context.Context, period *PayrollPeriod) error {
	f.periods[period.ID] = period
	return nil
}

func (f *fakePayrollRepo) FindPeriodByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*PayrollPeriod, error) {
	period, ok := f.periods[id]
	if !ok || !inOrg(orgIDs, period.OrganizationID) {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *period
	return &cp, nil
}

func (f *fakePayrollRepo) ListPeriods(ctx context.Context, orgID uuid.UUID) ([]PayrollPeriod, error) {
	var out []PayrollPeriod
	for _, period := range f.periods {
		if period.OrganizationID == orgID {
			out = append(out, *period)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) UpdatePeriod(ctx context.Context, period *PayrollPeriod) error {
	f.periods[period.ID] = period
	return nil
}

func (f *fakePayrollRepo) DeletePeriod(ctx context.Context, orgID, id uuid.UUID) error {
	delete(f.periods, id)
	return nil
}

func (f *fakePayrollRepo) CreatePayslip(ctx context.Context, payslip *Payslip) error {
	for _, existing := range f.payslips {
		if existing.PayrollPeriodID == payslip.PayrollPeriodID && existing.EmployeeID == payslip.EmployeeID {
			return errForFake("duplicate key value violates unique constraint \"uq_payslip_period_employee\"")
		}
	}
	f.payslips[payslip.ID] = payslip
	return nil
}

func (f *fakePayrollRepo) scopeOfPayslip(p *Payslip) uuid.UUID {
	return f.employeeOrg[p.EmployeeID]
}

func (f *fakePayrollRepo) FindPayslipByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Payslip, error) {
	p, ok := f.payslips[id]
	if !ok || !inOrg(orgIDs, f.scopeOfPayslip(p)) {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePayrollRepo) ListPayslips(ctx context.Context, orgIDs []uuid.UUID, filter PayslipFilter) ([]Payslip, int64, error) {
	var out []Payslip
	for _, p := range f.payslips {
		if !inOrg(orgIDs, f.scopeOfPayslip(p)) {
			continue
		}
		if filter.PeriodID != nil && p.PayrollPeriodID != *filter.PeriodID {
			continue
		}
		if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) UpdatePayslip(ctx context.Context, payslip *Payslip) error {
	f.payslips[payslip.ID] = payslip
	return nil
}

func (f *fakePayrollRepo) CountPayslipsByPeriod(ctx context.Context, periodID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range f.payslips {
		if p.PayrollPeriodID == periodID {
			count++
		}
	}
	return count, nil
}

func (f *fakePayrollRepo) SumNetByPeriod(ctx context.Context, periodID uuid.UUID) (float64, error) {
	var total float64
	for _, p := range f.payslips {
		if p.PayrollPeriodID == periodID {
			total += p.NetSalary
		}
	}
	return total, nil
}

type errForFake string

func (e errForFake) Error() string { return string(e) }

type fakeEmployeeLookup struct {
	employeeOrg map[uuid.UUID]uuid.UUID
}

func (f *fakeEmployeeLookup) WithTx(tx *gorm.DB) employee.Repository                 { return f }
func (f *fakeEmployeeLookup) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeLookup) Update(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeLookup) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*employee.Employee, error) {
	org, ok := f.employeeOrg[id]
	if !ok || !inOrg(orgIDs, org) {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee.Employee{ID: id, OrganizationID: org}, nil
}

func (f *fakeEmployeeLookup) FindByEmailAndOrg(ctx context.Context, orgID uuid.UUID, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeEmployeeLookup) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}
func (f *fakeEmployeeLookup) HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	return false, nil
}
func (f *fakeEmployeeLookup) CustomPermissionCodes(ctx context.Context, employeeID uuid.UUID) ([]string, error) {
	return nil, nil
}
func (f *fakeEmployeeLookup) AddCustomPermission(ctx context.Context, cp *employee.CustomPermission) error {
	return nil
}
func (f *fakeEmployeeLookup) RemoveCustomPermission(ctx context.Context, employeeID uuid.UUID, code string) error {
	return nil
}

type payrollFixture struct {
	svc      Service
	repo     *fakePayrollRepo
	orgID    uuid.UUID
	aliceID  uuid.UUID
	bobID    uuid.UUID
	periodID uuid.UUID
}

func newPayrollFixture(t *testing.T) *payrollFixture {
	t.Helper()
	repo := newFakePayrollRepo()
	orgID := uuid.New()
	aliceID := uuid.New()
	bobID := uuid.New()
	repo.employeeOrg[aliceID] = orgID
	repo.employeeOrg[bobID] = orgID

	svc := NewService(repo, &fakeEmployeeLookup{employeeOrg: repo.employeeOrg})

	period, err := svc.CreatePeriod(context.Background(), orgID, CreatePeriodRequest{
		Name: "August 2026", StartDate: "2026-08-01", EndDate: "2026-08-31",
	})
	require.NoError(t, err)

	return &payrollFixture{
		svc:      svc,
		repo:     repo,
		orgID:    orgID,
		aliceID:  aliceID,
		bobID:    bobID,
		periodID: period.ID,
	}
}

func (fx *payrollFixture) createPayslip(t *testing.T, employeeID uuid.UUID) PayslipResponse {
	t.Helper()
	resp, err := fx.svc.CreatePayslip(context.Background(), fx.orgID, CreatePayslipRequest{
		PayrollPeriodID: fx.periodID.String(),
		EmployeeID:      employeeID.String(),
		BaseSalary:      4000,
		OvertimePay:     250,
		Bonuses:         500,
		Allowances:      100,
		Tax:             900,
		SocialSecurity:  600,
		OtherDeductions: 50,
	})
	require.NoError(t, err)
	return resp
}

func TestCreatePayslipDerivesAmounts(t *testing.T) {
	fx := newPayrollFixture(t)

	resp := fx.createPayslip(t, fx.aliceID)
	assert.Equal(t, 4850.0, resp.GrossSalary)
	assert.Equal(t, 1550.0, resp.TotalDeductions)
	assert.Equal(t, 3300.0, resp.NetSalary)
	assert.Equal(t, PayslipStatusDraft, resp.Status)
}

func TestCreatePayslipRejectsForeignEmployee(t *testing.T) {
	fx := newPayrollFixture(t)
	stranger := uuid.New()
	fx.repo.employeeOrg[stranger] = uuid.New()

	_, err := fx.svc.CreatePayslip(context.Background(), fx.orgID, CreatePayslipRequest{
		PayrollPeriodID: fx.periodID.String(),
		EmployeeID:      stranger.String(),
		BaseSalary:      4000,
	})
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotInOrganization)
}

func TestCreatePayslipRejectsCompletedPeriod(t *testing.T) {
	fx := newPayrollFixture(t)
	status := PeriodStatusCompleted
	_, err := fx.svc.UpdatePeriod(context.Background(), fx.orgID, fx.periodID.String(), UpdatePeriodRequest{Status: &status})
	require.NoError(t, err)

	_, err = fx.svc.CreatePayslip(context.Background(), fx.orgID, CreatePayslipRequest{
		PayrollPeriodID: fx.periodID.String(),
		EmployeeID:      fx.aliceID.String(),
		BaseSalary:      4000,
	})
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodClosed)
}

func TestCreatePayslipRejectsDuplicate(t *testing.T) {
	fx := newPayrollFixture(t)
	fx.createPayslip(t, fx.aliceID)

	_, err := fx.svc.CreatePayslip(context.Background(), fx.orgID, CreatePayslipRequest{
		PayrollPeriodID: fx.periodID.String(),
		EmployeeID:      fx.aliceID.String(),
		BaseSalary:      4000,
	})
	assert.ErrorIs(t, err, payrollerrors.ErrDuplicatePayslip)
}

func TestPeriodStatusOnlyMovesForward(t *testing.T) {
	fx := newPayrollFixture(t)
	processing := PeriodStatusProcessing
	draft := PeriodStatusDraft

	_, err := fx.svc.UpdatePeriod(context.Background(), fx.orgID, fx.periodID.String(), UpdatePeriodRequest{Status: &processing})
	require.NoError(t, err)

	_, err = fx.svc.UpdatePeriod(context.Background(), fx.orgID, fx.periodID.String(), UpdatePeriodRequest{Status: &draft})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
}

func TestMarkPaidIsTerminal(t *testing.T) {
	fx := newPayrollFixture(t)
	payslip := fx.createPayslip(t, fx.aliceID)
	scope := []uuid.UUID{fx.orgID}

	paid, err := fx.svc.MarkPaid(context.Background(), scope, payslip.ID.String(), MarkPaidRequest{PaymentReference: "SEPA-42"})
	require.NoError(t, err)
	assert.Equal(t, PayslipStatusPaid, paid.Status)
	assert.Equal(t, "SEPA-42", paid.PaymentReference)
	require.NotNil(t, paid.PaymentDate)

	_, err = fx.svc.MarkPaid(context.Background(), scope, payslip.ID.String(), MarkPaidRequest{})
	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyPaid)
}

func TestListPayslipsNarrowsToOwnRowsForPlainStaff(t *testing.T) {
	fx := newPayrollFixture(t)
	fx.createPayslip(t, fx.aliceID)
	fx.createPayslip(t, fx.bobID)
	scope := []uuid.UUID{fx.orgID}

	alice := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeEmployee}
	own, total, err := fx.svc.ListPayslips(context.Background(), alice, scope, PayslipFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, own, 1)
	assert.Equal(t, fx.aliceID, own[0].EmployeeID)

	owner := authz.Owner{AdminID: uuid.New()}
	all, total, err := fx.svc.ListPayslips(context.Background(), owner, scope, PayslipFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestPayslipPDFHidesColleaguesRow(t *testing.T) {
	fx := newPayrollFixture(t)
	bobs := fx.createPayslip(t, fx.bobID)
	scope := []uuid.UUID{fx.orgID}

	alice := authz.Staff{EmployeeID: fx.aliceID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeEmployee}
	_, err := fx.svc.PayslipPDF(context.Background(), alice, scope, bobs.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)

	bob := authz.Staff{EmployeeID: fx.bobID, OrganizationID: fx.orgID, RoleCode: authz.RoleCodeEmployee}
	pdf, err := fx.svc.PayslipPDF(context.Background(), bob, scope, bobs.ID.String())
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPeriodTotalsAggregatePayslips(t *testing.T) {
	fx := newPayrollFixture(t)
	fx.createPayslip(t, fx.aliceID)
	fx.createPayslip(t, fx.bobID)

	period, err := fx.svc.GetPeriod(context.Background(), fx.orgID, fx.periodID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), period.PayslipCount)
	assert.Equal(t, 6600.0, period.TotalNetSalary)
}

func TestDeletePeriodRefusesWhenPayslipsExist(t *testing.T) {
	fx := newPayrollFixture(t)
	fx.createPayslip(t, fx.aliceID)

	err := fx.svc.DeletePeriod(context.Background(), fx.orgID, fx.periodID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotEmpty)
}
