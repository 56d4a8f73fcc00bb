package organization

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*Organization, error)
	FindAllByAdmin(ctx context.Context, adminID uuid.UUID) ([]Organization, error)
	OrgIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, adminID, id uuid.UUID) error

	FindAdminByID(ctx context.Context, id uuid.UUID) (*OwnerAdmin, error)
	FindAdminByEmail(ctx context.Context, email string) (*OwnerAdmin, error)
	CreateAdmin(ctx context.Context, admin *OwnerAdmin) error
	UpdateAdmin(ctx context.Context, admin *OwnerAdmin) error

	GetOrCreateSettings(ctx context.Context, orgID uuid.UUID) (*OrganizationSettings, error)
	UpdateSettings(ctx context.Context, settings *OrganizationSettings) error

	ListCategories(ctx context.Context) ([]Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetOrCreateCategory(ctx context.Context, category *Category) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).
		Preload("Settings").
		Preload("Category").
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) FindBySubdomain(ctx context.Context, subdomain string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).
		First(&org, "subdomain = ?", subdomain).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) FindAllByAdmin(ctx context.Context, adminID uuid.UUID) ([]Organization, error) {
	var orgs []Organization
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("name").
		Find(&orgs).Error
	return orgs, err
}

func (r *repository) OrgIDsByAdmin(ctx context.Context, adminID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Organization{}).
		Where("admin_id = ?", adminID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *repository) Delete(ctx context.Context, adminID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Delete(&Organization{}, "id = ?", id).Error
}

func (r *repository) FindAdminByID(ctx context.Context, id uuid.UUID) (*OwnerAdmin, error) {
	var admin OwnerAdmin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) FindAdminByEmail(ctx context.Context, email string) (*OwnerAdmin, error) {
	var admin OwnerAdmin
	err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) CreateAdmin(ctx context.Context, admin *OwnerAdmin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) UpdateAdmin(ctx context.Context, admin *OwnerAdmin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

func (r *repository) GetOrCreateSettings(ctx context.Context, orgID uuid.UUID) (*OrganizationSettings, error) {
	var settings OrganizationSettings
	err := r.db.WithContext(ctx).
		Where(OrganizationSettings{OrganizationID: orgID}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) UpdateSettings(ctx context.Context, settings *OrganizationSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *repository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var category Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetOrCreateCategory matches on name only; the description is a default,
// not an update. Reports whether a row was created.
func (r *repository) GetOrCreateCategory(ctx context.Context, category *Category) (bool, error) {
	res := r.db.WithContext(ctx).
		Where(Category{Name: category.Name}).
		Attrs(Category{Description: category.Description}).
		FirstOrCreate(category)
	return res.RowsAffected > 0, res.Error
}
