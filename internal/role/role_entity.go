package role

import (
	"time"

	"github.com/SalimDiallo/LouraBackend/internal/permission"

	"github.com/google/uuid"
)

// Role groups permissions under a code. A nil OrganizationID marks a global
// template role seeded by SyncPredefined; org-owned roles always carry their
// organization. Code is unique per organization, not globally. Postgres
// treats NULLs as distinct in unique indexes, so template codes get their own
// partial index on the NULL-org rows.
type Role struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_role_org_code"`
	Code           string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_role_org_code;uniqueIndex:uq_role_system_code,where:organization_id IS NULL"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	IsSystemRole   bool       `gorm:"not null;default:false"`
	IsActive       bool       `gorm:"not null;default:true"`

	Permissions []permission.Permission `gorm:"many2many:role_permissions;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Role) TableName() string {
	return "roles"
}

// PermissionCodes flattens the loaded association. Callers that need the
// codes without preloading go through Repository.PermissionCodesByRoleID.
func (r *Role) PermissionCodes() []string {
	codes := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		codes = append(codes, p.Code)
	}
	return codes
}
