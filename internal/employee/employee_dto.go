package employee

import (
	"time"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"max=20"`
	FirstName      string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName       string  `json:"last_name" binding:"required,min=1,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Phone          string  `json:"phone" binding:"max=50"`
	Language       string  `json:"language" binding:"max=5"`
	Timezone       string  `json:"timezone" binding:"max=50"`
	HireDate       string  `json:"hire_date" binding:"required"`
	DepartmentID   *string `json:"department_id"`
	PositionID     *string `json:"position_id"`
	ManagerID      *string `json:"manager_id"`
	RoleID         *string `json:"role_id"`
}

type UpdateEmployeeRequest struct {
	FirstName        *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName         *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	Language         *string `json:"language" binding:"omitempty,max=5"`
	Timezone         *string `json:"timezone" binding:"omitempty,max=50"`
	DepartmentID     *string `json:"department_id"`
	PositionID       *string `json:"position_id"`
	ManagerID        *string `json:"manager_id"`
	EmploymentStatus *string `json:"employment_status" binding:"omitempty,oneof=active on_leave suspended terminated"`
	TerminationDate  *string `json:"termination_date"`
}

type AssignRoleRequest struct {
	RoleID string `json:"role_id" binding:"required,uuid"`
}

type CustomPermissionRequest struct {
	PermissionCode string `json:"permission_code" binding:"required"`
}

type EmployeeResponse struct {
	ID               uuid.UUID  `json:"id"`
	OrganizationID   uuid.UUID  `json:"organization_id"`
	EmployeeNumber   string     `json:"employee_number"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Language         string     `json:"language,omitempty"`
	Timezone         string     `json:"timezone,omitempty"`
	HireDate         string     `json:"hire_date"`
	TerminationDate  string     `json:"termination_date,omitempty"`
	EmploymentStatus string     `json:"employment_status"`
	IsActive         bool       `json:"is_active"`
	DepartmentID     *uuid.UUID `json:"department_id,omitempty"`
	PositionID       *uuid.UUID `json:"position_id,omitempty"`
	ManagerID        *uuid.UUID `json:"manager_id,omitempty"`
	RoleID           *uuid.UUID `json:"role_id,omitempty"`
	RoleCode         string     `json:"role_code,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type PermissionSetResponse struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Permissions []string  `json:"permissions"`
}

func mapToResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		OrganizationID:   e.OrganizationID,
		EmployeeNumber:   e.EmployeeNumber,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Phone:            e.Phone,
		Language:         e.Language,
		Timezone:         e.Timezone,
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentStatus: e.EmploymentStatus,
		IsActive:         e.IsActive,
		DepartmentID:     e.DepartmentID,
		PositionID:       e.PositionID,
		ManagerID:        e.ManagerID,
		RoleID:           e.AssignedRoleID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.TerminationDate != nil {
		resp.TerminationDate = e.TerminationDate.Format("2006-01-02")
	}
	if e.AssignedRole != nil {
		resp.RoleCode = e.AssignedRole.Code
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, mapToResponse(&employees[i]))
	}
	return out
}
