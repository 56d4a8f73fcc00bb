package position

import (
	"time"

	"github.com/google/uuid"
)

type CreatePositionRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Code        string   `json:"code" binding:"omitempty,max=50"`
	Description string   `json:"description"`
	MinSalary   *float64 `json:"min_salary" binding:"omitempty,gte=0"`
	MaxSalary   *float64 `json:"max_salary" binding:"omitempty,gte=0"`
}

type UpdatePositionRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Code        *string  `json:"code" binding:"omitempty,max=50"`
	Description *string  `json:"description"`
	MinSalary   *float64 `json:"min_salary" binding:"omitempty,gte=0"`
	MaxSalary   *float64 `json:"max_salary" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

type PositionResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Title          string    `json:"title"`
	Code           string    `json:"code,omitempty"`
	Description    string    `json:"description,omitempty"`
	MinSalary      *float64  `json:"min_salary,omitempty"`
	MaxSalary      *float64  `json:"max_salary,omitempty"`
	EmployeeCount  int64     `json:"employee_count"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func mapToResponse(pos Position, employeeCount int64) PositionResponse {
	return PositionResponse{
		ID:             pos.ID,
		OrganizationID: pos.OrganizationID,
		Title:          pos.Title,
		Code:           pos.Code,
		Description:    pos.Description,
		MinSalary:      pos.MinSalary,
		MaxSalary:      pos.MaxSalary,
		EmployeeCount:  employeeCount,
		IsActive:       pos.IsActive,
		CreatedAt:      pos.CreatedAt,
		UpdatedAt:      pos.UpdatedAt,
	}
}
