package position

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, pos *Position) error
	FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Position, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Position, error)
	Update(ctx context.Context, pos *Position) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	ActiveEmployeeCount(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		First(&pos, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]Position, error) {
	var positions []Position
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("title").
		Find(&positions).Error
	return positions, err
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&Position{}, "id = ?", id)
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
		Where("position_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
