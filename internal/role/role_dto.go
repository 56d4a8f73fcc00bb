package role

import (
	"time"

	"github.com/google/uuid"
)

type CreateRoleRequest struct {
	Code            string   `json:"code" binding:"required,min=2,max=100"`
	Name            string   `json:"name" binding:"required,min=2,max=255"`
	Description     string   `json:"description" binding:"max=1000"`
	PermissionCodes []string `json:"permission_codes"`
}

type UpdateRoleRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description     *string  `json:"description" binding:"omitempty,max=1000"`
	IsActive        *bool    `json:"is_active"`
	PermissionCodes []string `json:"permission_codes"`
}

type RoleResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	IsSystemRole   bool       `json:"is_system_role"`
	IsActive       bool       `json:"is_active"`
	Permissions    []string   `json:"permissions"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toRoleResponse(r *Role) RoleResponse {
	return RoleResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Code:           r.Code,
		Name:           r.Name,
		Description:    r.Description,
		IsSystemRole:   r.IsSystemRole,
		IsActive:       r.IsActive,
		Permissions:    r.PermissionCodes(),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
