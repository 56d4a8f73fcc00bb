package employee

import (
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/role"

	"github.com/google/uuid"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusSuspended  = "suspended"
	StatusTerminated = "terminated"
)

// Employee belongs to exactly one organization for life. Email is unique
// within the organization, not globally, so two tenants can employ the same
// address.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_org_email;uniqueIndex:uq_employee_org_number"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index"`
	PositionID     *uuid.UUID `gorm:"type:uuid"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index"`
	AssignedRoleID *uuid.UUID `gorm:"type:uuid;index"`

	// EmployeeNumber is the badge number HR hands out; unique per
	// organization like the email.
	EmployeeNumber string `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_org_number"`
	FirstName      string `gorm:"type:varchar(100);not null"`
	LastName       string `gorm:"type:varchar(100);not null"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_org_email"`
	PasswordHash   string `gorm:"type:varchar(255);not null"`
	Phone          string `gorm:"type:varchar(50)"`
	Language       string `gorm:"type:varchar(5);not null;default:'fr'"`
	Timezone       string `gorm:"type:varchar(50);not null;default:'Africa/Conakry'"`

	HireDate         time.Time  `gorm:"type:date;not null"`
	TerminationDate  *time.Time `gorm:"type:date"`
	EmploymentStatus string     `gorm:"type:varchar(20);not null;default:'active'"`
	IsActive         bool       `gorm:"not null;default:true"`

	AssignedRole *role.Role `gorm:"foreignKey:AssignedRoleID"`
	Manager      *Employee  `gorm:"foreignKey:ManagerID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CustomPermission grants one extra permission code to one employee on top
// of whatever their role carries. Revoking deletes the row.
type CustomPermission struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_custom_permission"`
	PermissionCode string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_employee_custom_permission"`
	GrantedBy      string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
}

func (CustomPermission) TableName() string {
	return "employee_custom_permissions"
}
