package contract

import (
	"time"

	"github.com/google/uuid"
)

type CreateContractRequest struct {
	EmployeeID      string  `json:"employee_id" binding:"required,uuid"`
	ContractType    string  `json:"contract_type" binding:"required,oneof=permanent fixed_term part_time internship freelance"`
	StartDate       string  `json:"start_date" binding:"required"`
	EndDate         *string `json:"end_date"`
	BaseSalary      float64 `json:"base_salary" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"omitempty,len=3"`
	SalaryPeriod    string  `json:"salary_period" binding:"omitempty,oneof=hourly weekly monthly annual"`
	HoursPerWeek    float64 `json:"hours_per_week" binding:"omitempty,gt=0,lte=80"`
	Description     string  `json:"description"`
	ContractFileURL *string `json:"contract_file_url" binding:"omitempty,url"`
}

type UpdateContractRequest struct {
	ContractType    *string  `json:"contract_type" binding:"omitempty,oneof=permanent fixed_term part_time internship freelance"`
	EndDate         *string  `json:"end_date"`
	BaseSalary      *float64 `json:"base_salary" binding:"omitempty,gt=0"`
	Currency        *string  `json:"currency" binding:"omitempty,len=3"`
	SalaryPeriod    *string  `json:"salary_period" binding:"omitempty,oneof=hourly weekly monthly annual"`
	HoursPerWeek    *float64 `json:"hours_per_week" binding:"omitempty,gt=0,lte=80"`
	Description     *string  `json:"description"`
	ContractFileURL *string  `json:"contract_file_url" binding:"omitempty,url"`
	IsActive        *bool    `json:"is_active"`
}

type ContractResponse struct {
	ID              uuid.UUID `json:"id"`
	EmployeeID      uuid.UUID `json:"employee_id"`
	ContractType    string    `json:"contract_type"`
	StartDate       string    `json:"start_date"`
	EndDate         *string   `json:"end_date,omitempty"`
	BaseSalary      float64   `json:"base_salary"`
	Currency        string    `json:"currency"`
	SalaryPeriod    string    `json:"salary_period"`
	HoursPerWeek    float64   `json:"hours_per_week,omitempty"`
	Description     string    `json:"description,omitempty"`
	ContractFileURL *string   `json:"contract_file_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func mapToResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:              c.ID,
		EmployeeID:      c.EmployeeID,
		ContractType:    c.ContractType,
		StartDate:       c.StartDate.Format(dateLayout),
		BaseSalary:      c.BaseSalary,
		Currency:        c.Currency,
		SalaryPeriod:    c.SalaryPeriod,
		HoursPerWeek:    c.HoursPerWeek,
		Description:     c.Description,
		ContractFileURL: c.ContractFileURL,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

func mapToListResponse(contracts []Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}
