package department

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept *Department) error
	FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Department, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	ActiveEmployeeCount(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&depts).Error
	return depts, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ActiveEmployeeCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
