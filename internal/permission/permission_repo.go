package permission

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=permission_repo.go -destination=mock/permission_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Permission, error)
	FindByCodes(ctx context.Context, codes []string) ([]Permission, error)
	Upsert(ctx context.Context, p *Permission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListAll(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	err := r.db.WithContext(ctx).
		Order("category, name").
		Find(&perms).Error
	return perms, err
}

func (r *repository) FindByCodes(ctx context.Context, codes []string) ([]Permission, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var perms []Permission
	err := r.db.WithContext(ctx).
		Where("code IN ?", codes).
		Find(&perms).Error
	return perms, err
}

// Upsert creates or updates by code. The unique index on code makes the
// conflict target, so re-running a sync never duplicates rows.
func (r *repository) Upsert(ctx context.Context, p *Permission) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category", "description", "updated_at"}),
		}).
		Create(p).Error
}
