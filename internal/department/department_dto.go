package department

import (
	"time"

	"github.com/google/uuid"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Code        string  `json:"code" binding:"omitempty,max=50"`
	Description string  `json:"description"`
	HeadID      *string `json:"head_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Code        *string `json:"code" binding:"omitempty,max=50"`
	Description *string `json:"description"`
	HeadID      *string `json:"head_id" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"is_active"`
}

type DepartmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Code           string     `json:"code,omitempty"`
	Description    string     `json:"description,omitempty"`
	HeadID         *uuid.UUID `json:"head_id,omitempty"`
	EmployeeCount  int64      `json:"employee_count"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func mapToResponse(dept Department, employeeCount int64) DepartmentResponse {
	return DepartmentResponse{
		ID:             dept.ID,
		OrganizationID: dept.OrganizationID,
		Name:           dept.Name,
		Code:           dept.Code,
		Description:    dept.Description,
		HeadID:         dept.HeadID,
		EmployeeCount:  employeeCount,
		IsActive:       dept.IsActive,
		CreatedAt:      dept.CreatedAt,
		UpdatedAt:      dept.UpdatedAt,
	}
}
