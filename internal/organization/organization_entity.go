package organization

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerAdmin supervises one or more organizations. It is a separate account
// universe from employees: ids never cross between the two tables.
type OwnerAdmin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_admin_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastLogin    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (OwnerAdmin) TableName() string {
	return "admin_users"
}

func (a OwnerAdmin) FullName() string {
	switch {
	case a.FirstName == "" && a.LastName == "":
		return a.Email
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// Category labels an organization's sector. The list is a shared,
// seed-managed catalog; organizations reference it but never write it.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_category_name"`
	Description string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

// Organization is one tenant. Exactly one OwnerAdmin owns it; deleting the
// admin cascades to the organization.
type Organization struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Subdomain  string     `gorm:"type:varchar(63);not null;uniqueIndex:uq_organization_subdomain"`
	LogoURL    *string    `gorm:"type:varchar(500)"`
	AdminID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool       `gorm:"not null;default:true"`

	Category *Category             `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Settings *OrganizationSettings `gorm:"foreignKey:OrganizationID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}

type OrganizationSettings struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_organization_settings"`
	Country        *string   `gorm:"type:varchar(2)"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'MAD'"`
	Theme          *string   `gorm:"type:varchar(100)"`
	ContactEmail   *string   `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrganizationSettings) TableName() string {
	return "organization_settings"
}
