package payroll

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreatePeriodRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	PaymentDate *string `json:"payment_date"`
	Notes       string  `json:"notes"`
}

type UpdatePeriodRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	PaymentDate *string `json:"payment_date"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft processing completed"`
	Notes       *string `json:"notes"`
}

type PeriodResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	PaymentDate    *string   `json:"payment_date,omitempty"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	PayslipCount   int64     `json:"payslip_count"`
	TotalNetSalary float64   `json:"total_net_salary"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreatePayslipRequest struct {
	PayrollPeriodID string  `json:"payroll_period_id" binding:"required,uuid"`
	EmployeeID      string  `json:"employee_id" binding:"required,uuid"`
	BaseSalary      float64 `json:"base_salary" binding:"required,gt=0"`
	OvertimePay     float64 `json:"overtime_pay" binding:"omitempty,gte=0"`
	Bonuses         float64 `json:"bonuses" binding:"omitempty,gte=0"`
	Allowances      float64 `json:"allowances" binding:"omitempty,gte=0"`
	Tax             float64 `json:"tax" binding:"omitempty,gte=0"`
	SocialSecurity  float64 `json:"social_security" binding:"omitempty,gte=0"`
	OtherDeductions float64 `json:"other_deductions" binding:"omitempty,gte=0"`
	Currency        string  `json:"currency" binding:"omitempty,len=3"`
	WorkedHours     float64 `json:"worked_hours" binding:"omitempty,gte=0"`
	OvertimeHours   float64 `json:"overtime_hours" binding:"omitempty,gte=0"`
	LeaveDaysTaken  float64 `json:"leave_days_taken" binding:"omitempty,gte=0"`
	PaymentMethod   string  `json:"payment_method" binding:"omitempty,max=50"`
	Notes           string  `json:"notes"`
}

type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference" binding:"omitempty,max=255"`
}

type PayslipResponse struct {
	ID              uuid.UUID `json:"id"`
	PayrollPeriodID uuid.UUID `json:"payroll_period_id"`
	EmployeeID      uuid.UUID `json:"employee_id"`

	BaseSalary      float64 `json:"base_salary"`
	OvertimePay     float64 `json:"overtime_pay"`
	Bonuses         float64 `json:"bonuses"`
	Allowances      float64 `json:"allowances"`
	Tax             float64 `json:"tax"`
	SocialSecurity  float64 `json:"social_security"`
	OtherDeductions float64 `json:"other_deductions"`
	GrossSalary     float64 `json:"gross_salary"`
	TotalDeductions float64 `json:"total_deductions"`
	NetSalary       float64 `json:"net_salary"`

	Currency       string  `json:"currency"`
	WorkedHours    float64 `json:"worked_hours,omitempty"`
	OvertimeHours  float64 `json:"overtime_hours,omitempty"`
	LeaveDaysTaken float64 `json:"leave_days_taken,omitempty"`

	Status           string    `json:"status"`
	PaymentMethod    string    `json:"payment_method,omitempty"`
	PaymentDate      *string   `json:"payment_date,omitempty"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func mapPeriodToResponse(period PayrollPeriod, payslipCount int64, totalNet float64) PeriodResponse {
	resp := PeriodResponse{
		ID:             period.ID,
		OrganizationID: period.OrganizationID,
		Name:           period.Name,
		StartDate:      period.StartDate.Format(dateLayout),
		EndDate:        period.EndDate.Format(dateLayout),
		Status:         period.Status,
		Notes:          period.Notes,
		PayslipCount:   payslipCount,
		TotalNetSalary: totalNet,
		CreatedAt:      period.CreatedAt,
		UpdatedAt:      period.UpdatedAt,
	}
	if period.PaymentDate != nil {
		d := period.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &d
	}
	return resp
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:               p.ID,
		PayrollPeriodID:  p.PayrollPeriodID,
		EmployeeID:       p.EmployeeID,
		BaseSalary:       p.BaseSalary,
		OvertimePay:      p.OvertimePay,
		Bonuses:          p.Bonuses,
		Allowances:       p.Allowances,
		Tax:              p.Tax,
		SocialSecurity:   p.SocialSecurity,
		OtherDeductions:  p.OtherDeductions,
		GrossSalary:      p.GrossSalary,
		TotalDeductions:  p.TotalDeductions,
		NetSalary:        p.NetSalary,
		Currency:         p.Currency,
		WorkedHours:      p.WorkedHours,
		OvertimeHours:    p.OvertimeHours,
		LeaveDaysTaken:   p.LeaveDaysTaken,
		Status:           p.Status,
		PaymentMethod:    p.PaymentMethod,
		PaymentReference: p.PaymentReference,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &d
	}
	return resp
}

func mapPayslipsToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		resp = append(resp, mapPayslipToResponse(p))
	}
	return resp
}
