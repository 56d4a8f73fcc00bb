package contract

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID *uuid.UUID
	Offset     int
	Limit      int
}

//go:generate mockgen -source=contract_repo.go -destination=mock/contract_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Contract, error)
	List(ctx context.Context, orgIDs []uuid.UUID, filter ListFilter) ([]Contract, int64, error)
	Update(ctx context.Context, contract *Contract) error
	Delete(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, contract *Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *repository) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Contract, error) {
	var contract Contract
	err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeViaEmployee(orgIDs)).
		First(&contract, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *repository) List(ctx context.Context, orgIDs []uuid.UUID, filter ListFilter) ([]Contract, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&Contract{}).
		Scopes(tenant.ScopeViaEmployee(orgIDs))

	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contracts []Contract
	err := q.Order("start_date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&contracts).Error
	return contracts, total, err
}

func (r *repository) Update(ctx context.Context, contract *Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *repository) Delete(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.ScopeViaEmployee(orgIDs)).
		Delete(&Contract{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
