package employee

import (
	"context"

	"github.com/SalimDiallo/LouraBackend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Employee, error)
	FindByEmailAndOrg(ctx context.Context, orgID uuid.UUID, email string) (*Employee, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]Employee, int64, error)
	Update(ctx context.Context, e *Employee) error
	HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error)
	CustomPermissionCodes(ctx context.Context, employeeID uuid.UUID) ([]string, error)
	AddCustomPermission(ctx context.Context, cp *CustomPermission) error
	RemoveCustomPermission(ctx context.Context, employeeID uuid.UUID, code string) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, orgIDs []uuid.UUID, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(orgIDs)).
		Preload("AssignedRole").
		Preload("AssignedRole.Permissions").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByEmailAndOrg(ctx context.Context, orgID uuid.UUID, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND LOWER(email) = LOWER(?)", orgID, email).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&Employee{}).Where("organization_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	err := q.
		Preload("AssignedRole").
		Order("last_name, first_name").
		Offset(offset).
		Limit(limit).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).
		Omit("AssignedRole", "Manager").
		Save(e).Error
}

func (r *repository) HasSubordinates(ctx context.Context, employeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("manager_id = ? AND is_active", employeeID).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) CustomPermissionCodes(ctx context.Context, employeeID uuid.UUID) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&CustomPermission{}).
		Where("employee_id = ?", employeeID).
		Pluck("permission_code", &codes).Error
	return codes, err
}

func (r *repository) AddCustomPermission(ctx context.Context, cp *CustomPermission) error {
	return r.db.WithContext(ctx).Create(cp).Error
}

func (r *repository) RemoveCustomPermission(ctx context.Context, employeeID uuid.UUID, code string) error {
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND permission_code = ?", employeeID, code).
		Delete(&CustomPermission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
