package leave

import (
	"context"
	"testing"
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/authz"
	leaveerrors "github.com/SalimDiallo/LouraBackend/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type balanceKey struct {
	employeeID  uuid.UUID
	leaveTypeID uuid.UUID
	year        int
}

type fakeLeaveRepo struct {
	types    map[uuid.UUID]*LeaveType
	requests map[uuid.UUID]*LeaveRequest
	balances map[balanceKey]*LeaveBalance
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		types:    map[uuid.UUID]*LeaveType{},
		requests: map[uuid.UUID]*LeaveRequest{},
		balances: map[balanceKey]*LeaveBalance{},
	}
}

func (f *fakeLeaveRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeLeaveRepo) CreateLeaveType(ctx context.Context, lt *LeaveType) error {
	lt.ID = uuid.New()
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeLeaveRepo) FindLeaveTypeByID(ctx context.Context, orgID, id uuid.UUID) (*LeaveType, error) {
	lt, ok := f.types[id]
	if !ok || lt.OrganizationID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	return lt, nil
}

func (f *fakeLeaveRepo) ListLeaveTypes(ctx context.Context, orgID uuid.UUID) ([]LeaveType, error) {
	var out []LeaveType
	for _, lt := range f.types {
		if lt.OrganizationID == orgID {
			out = append(out, *lt)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateLeaveType(ctx context.Context, lt *LeaveType) error {
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeLeaveRepo) DeleteLeaveType(ctx context.Context, orgID, id uuid.UUID) error {
	lt, ok := f.types[id]
	if !ok || lt.OrganizationID != orgID {
		return gorm.ErrRecordNotFound
	}
	delete(f.types, id)
	return nil
}

func (f *fakeLeaveRepo) CreateRequest(ctx context.Context, r *LeaveRequest) error {
	r.ID = uuid.New()
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) FindRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error) {
	return f.LockRequestByID(ctx, orgIDs, id)
}

func (f *fakeLeaveRepo) LockRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for _, orgID := range orgIDs {
		if orgID == r.OrganizationID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepo) ListRequests(ctx context.Context, orgIDs []uuid.UUID, filter RequestFilter) ([]LeaveRequest, int64, error) {
	var out []LeaveRequest
	for _, r := range f.requests {
		if filter.EmployeeID != nil && *filter.EmployeeID != r.EmployeeID {
			continue
		}
		if filter.Status != "" && filter.Status != r.Status {
			continue
		}
		for _, orgID := range orgIDs {
			if orgID == r.OrganizationID {
				out = append(out, *r)
			}
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) UpdateRequest(ctx context.Context, r *LeaveRequest) error {
	if _, ok := f.requests[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetOrCreateBalanceLocked(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int, defaultDays float64) (*LeaveBalance, error) {
	key := balanceKey{employeeID, leaveTypeID, year}
	if b, ok := f.balances[key]; ok {
		return b, nil
	}
	b := &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        year,
		TotalDays:   defaultDays,
	}
	f.balances[key] = b
	return b, nil
}

func (f *fakeLeaveRepo) LockBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	if b, ok := f.balances[balanceKey{employeeID, leaveTypeID, year}]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepo) UpdateBalance(ctx context.Context, b *LeaveBalance) error {
	f.balances[balanceKey{b.EmployeeID, b.LeaveTypeID, b.Year}] = b
	return nil
}

func (f *fakeLeaveRepo) ListBalances(ctx context.Context, orgIDs []uuid.UUID, employeeID *uuid.UUID, year int) ([]LeaveBalance, error) {
	var out []LeaveBalance
	for _, b := range f.balances {
		if employeeID != nil && *employeeID != b.EmployeeID {
			continue
		}
		if year > 0 && year != b.Year {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

type leaveFixture struct {
	svc     Service
	repo    *fakeLeaveRepo
	mock    sqlmock.Sqlmock
	orgID   uuid.UUID
	staff   authz.Staff
	manager authz.Staff
	lt      *LeaveType
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()
	gdb, mock := newMockGorm(t)
	repo := newFakeLeaveRepo()
	orgID := uuid.New()

	lt := &LeaveType{
		OrganizationID:     orgID,
		Name:               "Annual Leave",
		DefaultDaysPerYear: 25,
		IsActive:           true,
	}
	require.NoError(t, repo.CreateLeaveType(context.Background(), lt))

	return &leaveFixture{
		svc:   NewService(gdb, repo, nil),
		repo:  repo,
		mock:  mock,
		orgID: orgID,
		staff: authz.Staff{
			EmployeeID:     uuid.New(),
			OrganizationID: orgID,
			RoleCode:       "employee",
		},
		manager: authz.Staff{
			EmployeeID:     uuid.New(),
			OrganizationID: orgID,
			RoleCode:       "hr_admin",
		},
		lt: lt,
	}
}

func (fx *leaveFixture) balance(year int) *LeaveBalance {
	return fx.repo.balances[balanceKey{fx.staff.EmployeeID, fx.lt.ID, year}]
}

func TestSubmitReservesPendingDays(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	resp, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, fx.staff.EmployeeID, resp.EmployeeID)

	b := fx.balance(2026)
	require.NotNil(t, b)
	assert.Equal(t, 25.0, b.TotalDays)
	assert.Equal(t, 3.0, b.PendingDays)
	assert.Equal(t, 0.0, b.UsedDays)
	assert.Equal(t, 22.0, b.AvailableDays())
}

func TestApproveSettlesLedgerAndIsTerminal(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	submitted, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	require.NoError(t, err)

	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	scope := []uuid.UUID{fx.orgID}
	approved, err := fx.svc.Approve(context.Background(), fx.manager, scope, submitted.ID.String(), DecisionRequest{
		ApprovalNotes: "enjoy",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	require.NotNil(t, approved.ApproverKind)
	assert.Equal(t, ApproverKindEmployee, *approved.ApproverKind)
	assert.Equal(t, fx.manager.EmployeeID, *approved.ApproverID)
	require.NotNil(t, approved.ApprovalDate)

	b := fx.balance(2026)
	assert.Equal(t, 3.0, b.UsedDays)
	assert.Equal(t, 0.0, b.PendingDays)
	assert.Equal(t, 22.0, b.AvailableDays())

	// A second approve must fail and leave the ledger untouched.
	fx.mock.ExpectBegin()
	fx.mock.ExpectRollback()
	_, err = fx.svc.Approve(context.Background(), fx.manager, scope, submitted.ID.String(), DecisionRequest{})
	assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	assert.Equal(t, 3.0, fx.balance(2026).UsedDays)
	assert.Equal(t, 0.0, fx.balance(2026).PendingDays)
}

func TestRejectReleasesReservation(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	submitted, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-02",
		TotalDays:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, fx.balance(2026).PendingDays)

	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	rejected, err := fx.svc.Reject(context.Background(), fx.manager, []uuid.UUID{fx.orgID}, submitted.ID.String(), DecisionRequest{
		ApprovalNotes: "coverage gap",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)

	b := fx.balance(2026)
	assert.Equal(t, 0.0, b.PendingDays)
	assert.Equal(t, 0.0, b.UsedDays)
	assert.Equal(t, 25.0, b.AvailableDays())
}

func TestSubmitRejectsInvertedDates(t *testing.T) {
	fx := newLeaveFixture(t)

	_, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-09",
		EndDate:     "2026-09-07",
		TotalDays:   3,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	assert.Empty(t, fx.repo.requests)
	assert.Nil(t, fx.balance(2026))
}

func TestSubmitRejectsTotalDaysMismatch(t *testing.T) {
	fx := newLeaveFixture(t)

	_, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   2.5, // span is 3 without half-day flags
	})
	assert.ErrorIs(t, err, leaveerrors.ErrTotalDaysMismatch)

	// With a half day at the start the same figure is valid.
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	resp, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID:  fx.lt.ID.String(),
		StartDate:    "2026-09-07",
		EndDate:      "2026-09-09",
		StartHalfDay: true,
		TotalDays:    2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, resp.TotalDays)
}

func TestSubmitHonorsMaxConsecutiveDays(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.lt.MaxConsecutiveDays = 5

	_, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-13",
		TotalDays:   7,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrMaxConsecutiveExceeded)
}

func TestSubmitRequiresStaffPrincipal(t *testing.T) {
	fx := newLeaveFixture(t)

	_, err := fx.svc.Submit(context.Background(), authz.Owner{AdminID: uuid.New()}, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	assert.ErrorIs(t, err, leaveerrors.ErrStaffOnly)
}

func TestCancelRequesterOnly(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	submitted, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-11-02",
		EndDate:     "2026-11-03",
		TotalDays:   2,
	})
	require.NoError(t, err)

	scope := []uuid.UUID{fx.orgID}
	fx.mock.ExpectBegin()
	fx.mock.ExpectRollback()
	_, err = fx.svc.Cancel(context.Background(), fx.manager, scope, submitted.ID.String())
	assert.ErrorIs(t, err, leaveerrors.ErrNotRequester)
	assert.Equal(t, 2.0, fx.balance(2026).PendingDays)

	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	cancelled, err := fx.svc.Cancel(context.Background(), fx.staff, scope, submitted.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, 0.0, fx.balance(2026).PendingDays)
}

func TestApproveOutOfScopeReadsNotFound(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	submitted, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	require.NoError(t, err)

	fx.mock.ExpectBegin()
	fx.mock.ExpectRollback()
	_, err = fx.svc.Approve(context.Background(), fx.manager, []uuid.UUID{uuid.New()}, submitted.ID.String(), DecisionRequest{})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveRequestNotFound)
}

func TestListRequestsNarrowsToOwnRowsForPlainStaff(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	_, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	require.NoError(t, err)

	colleague := authz.Staff{EmployeeID: uuid.New(), OrganizationID: fx.orgID, RoleCode: "employee"}
	teamLead := authz.Staff{EmployeeID: uuid.New(), OrganizationID: fx.orgID, RoleCode: "manager"}
	orgIDs := []uuid.UUID{fx.orgID}

	_, total, err := fx.svc.ListRequests(context.Background(), colleague, orgIDs, RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = fx.svc.ListRequests(context.Background(), fx.staff, orgIDs, RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = fx.svc.ListRequests(context.Background(), teamLead, orgIDs, RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = fx.svc.ListRequests(context.Background(), fx.manager, orgIDs, RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGetRequestHidesColleaguesRow(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()

	submitted, err := fx.svc.Submit(context.Background(), fx.staff, SubmitLeaveRequest{
		LeaveTypeID: fx.lt.ID.String(),
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-09",
		TotalDays:   3,
	})
	require.NoError(t, err)

	colleague := authz.Staff{EmployeeID: uuid.New(), OrganizationID: fx.orgID, RoleCode: "employee"}
	orgIDs := []uuid.UUID{fx.orgID}

	_, err = fx.svc.GetRequest(context.Background(), colleague, orgIDs, submitted.ID.String())
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveRequestNotFound)

	_, err = fx.svc.GetRequest(context.Background(), fx.staff, orgIDs, submitted.ID.String())
	require.NoError(t, err)

	_, err = fx.svc.GetRequest(context.Background(), fx.manager, orgIDs, submitted.ID.String())
	require.NoError(t, err)
}

func TestListBalancesOrgWideForHRAdminOnly(t *testing.T) {
	fx := newLeaveFixture(t)
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	require.NoError(t, fx.svc.ProvisionDefaultBalances(context.Background(), fx.orgID, fx.staff.EmployeeID, 2026))

	// Unlike requests, the ledger stays out of a manager's reach.
	teamLead := authz.Staff{EmployeeID: uuid.New(), OrganizationID: fx.orgID, RoleCode: "manager"}
	orgIDs := []uuid.UUID{fx.orgID}

	balances, err := fx.svc.ListBalances(context.Background(), teamLead, orgIDs, "", 2026)
	require.NoError(t, err)
	assert.Empty(t, balances)

	balances, err = fx.svc.ListBalances(context.Background(), fx.staff, orgIDs, "", 2026)
	require.NoError(t, err)
	assert.Len(t, balances, 1)

	// An HR admin's employee_id filter still applies; plain staff cannot
	// smuggle a colleague's id through it.
	balances, err = fx.svc.ListBalances(context.Background(), fx.manager, orgIDs, "", 2026)
	require.NoError(t, err)
	assert.Len(t, balances, 1)

	balances, err = fx.svc.ListBalances(context.Background(), teamLead, orgIDs, fx.staff.EmployeeID.String(), 2026)
	require.NoError(t, err)
	assert.Empty(t, balances)
}

func TestProvisionDefaultBalancesIsIdempotent(t *testing.T) {
	fx := newLeaveFixture(t)

	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	require.NoError(t, fx.svc.ProvisionDefaultBalances(context.Background(), fx.orgID, fx.staff.EmployeeID, 2026))

	b := fx.balance(2026)
	require.NotNil(t, b)
	assert.Equal(t, 25.0, b.TotalDays)

	b.UsedDays = 4
	fx.mock.ExpectBegin()
	fx.mock.ExpectCommit()
	require.NoError(t, fx.svc.ProvisionDefaultBalances(context.Background(), fx.orgID, fx.staff.EmployeeID, 2026))
	assert.Equal(t, 4.0, fx.balance(2026).UsedDays)
}

func TestSpanDays(t *testing.T) {
	start := mustDate(t, "2026-09-07")
	end := mustDate(t, "2026-09-09")

	assert.Equal(t, 3.0, SpanDays(start, end, false, false))
	assert.Equal(t, 2.5, SpanDays(start, end, true, false))
	assert.Equal(t, 2.0, SpanDays(start, end, true, true))
	assert.Equal(t, 1.0, SpanDays(start, start, false, false))
	assert.Equal(t, 0.5, SpanDays(start, start, true, false))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}
