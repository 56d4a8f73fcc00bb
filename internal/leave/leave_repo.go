package leave

import (
	"context"
	"errors"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestFilter struct {
	Status     string
	EmployeeID *uuid.UUID
	Offset     int
	Limit      int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateLeaveType(ctx context.Context, lt *LeaveType) error
	FindLeaveTypeByID(ctx context.Context, orgID, id uuid.UUID) (*LeaveType, error)
	ListLeaveTypes(ctx context.Context, orgID uuid.UUID) ([]LeaveType, error)
	UpdateLeaveType(ctx context.Context, lt *LeaveType) error
	DeleteLeaveType(ctx context.Context, orgID, id uuid.UUID) error

	CreateRequest(ctx context.Context, r *LeaveRequest) error
	FindRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error)
	// LockRequestByID reads the row FOR UPDATE so concurrent transitions on
	// the same request serialize.
	LockRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error)
	ListRequests(ctx context.Context, orgIDs []uuid.UUID, filter RequestFilter) ([]LeaveRequest, int64, error)
	UpdateRequest(ctx context.Context, r *LeaveRequest) error

	// GetOrCreateBalanceLocked returns the ledger row FOR UPDATE, creating it
	// seeded with defaultDays when it does not exist yet. The unique key on
	// (employee, leave_type, year) absorbs create races.
	GetOrCreateBalanceLocked(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int, defaultDays float64) (*LeaveBalance, error)
	// LockBalance is GetOrCreateBalanceLocked without the create: returns
	// gorm.ErrRecordNotFound when no row exists.
	LockBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	UpdateBalance(ctx context.Context, b *LeaveBalance) error
	ListBalances(ctx context.Context, orgIDs []uuid.UUID, employeeID *uuid.UUID, year int) ([]LeaveBalance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateLeaveType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) FindLeaveTypeByID(ctx context.Context, orgID, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ListLeaveTypes(ctx context.Context, orgID uuid.UUID) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&types).Error
	return types, err
}

func (r *repository) UpdateLeaveType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) DeleteLeaveType(ctx context.Context, orgID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&LeaveType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		Preload("LeaveType").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) LockRequestByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) ListRequests(ctx context.Context, orgIDs []uuid.UUID, filter RequestFilter) ([]LeaveRequest, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(orgIDs))

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var requests []LeaveRequest
	err := q.
		Preload("LeaveType").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *repository) UpdateRequest(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).
		Omit("LeaveType").
		Save(req).Error
}

func (r *repository) GetOrCreateBalanceLocked(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int, defaultDays float64) (*LeaveBalance, error) {
	balance, err := r.LockBalance(ctx, employeeID, leaveTypeID, year)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seed := &LeaveBalance{
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        year,
		TotalDays:   defaultDays,
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(seed).Error
	if err != nil {
		return nil, err
	}

	// Re-read under lock: a concurrent insert may have won the conflict.
	return r.LockBalance(ctx, employeeID, leaveTypeID, year)
}

func (r *repository) LockBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	var balance LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *repository) UpdateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) ListBalances(ctx context.Context, orgIDs []uuid.UUID, employeeID *uuid.UUID, year int) ([]LeaveBalance, error) {
	q := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Scopes(tenant.ScopeViaEmployee(orgIDs))

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}
	if year > 0 {
		q = q.Where("year = ?", year)
	}

	var balances []LeaveBalance
	err := q.Order("year DESC").Find(&balances).Error
	return balances, err
}
