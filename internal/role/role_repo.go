package role

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/permission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, r *Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)
	FindByOrgAndCode(ctx context.Context, orgID *uuid.UUID, code string) (*Role, error)
	ListForOrg(ctx context.Context, orgID uuid.UUID) ([]Role, error)
	Update(ctx context.Context, r *Role) error
	ReplacePermissions(ctx context.Context, r *Role, perms []permission.Permission) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAssignments(ctx context.Context, roleID uuid.UUID) (int64, error)
	PermissionCodesByRoleID(ctx context.Context, roleID uuid.UUID) ([]string, error)
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

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) FindByOrgAndCode(ctx context.Context, orgID *uuid.UUID, code string) (*Role, error) {
	q := r.db.WithContext(ctx).Preload("Permissions").Where("code = ?", code)
	if orgID == nil {
		q = q.Where("organization_id IS NULL")
	} else {
		q = q.Where("organization_id = ?", *orgID)
	}
	var role Role
	if err := q.First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ListForOrg returns the organization's own roles plus the global system
// templates, which every tenant can assign.
func (r *repository) ListForOrg(ctx context.Context, orgID uuid.UUID) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("organization_id = ? OR organization_id IS NULL", orgID).
		Order("is_system_role DESC, code").
		Find(&roles).Error
	return roles, err
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).
		Omit("Permissions").
		Save(role).Error
}

func (r *repository) ReplacePermissions(ctx context.Context, role *Role, perms []permission.Permission) error {
	return r.db.WithContext(ctx).
		Model(role).
		Association("Permissions").
		Replace(perms)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Role{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAssignments(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("assigned_role_id = ?", roleID).
		Count(&n).Error
	return n, err
}

func (r *repository) PermissionCodesByRoleID(ctx context.Context, roleID uuid.UUID) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Table("permissions").
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id = ?", roleID).
		Pluck("permissions.code", &codes).Error
	return codes, err
}
