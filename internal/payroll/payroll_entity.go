package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PeriodStatusDraft      = "draft"
	PeriodStatusProcessing = "processing"
	PeriodStatusCompleted  = "completed"
)

const (
	PayslipStatusDraft = "draft"
	PayslipStatusPaid  = "paid"
)

type PayrollPeriod struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_period_org_name"`
	Name           string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_payroll_period_org_name"`
	StartDate      time.Time  `gorm:"type:date;not null"`
	EndDate        time.Time  `gorm:"type:date;not null"`
	PaymentDate    *time.Time `gorm:"type:date"`
	Status         string     `gorm:"type:varchar(20);not null;default:'draft'"`
	Notes          string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

type Payslip struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollPeriodID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period_employee"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period_employee"`

	BaseSalary      float64 `gorm:"type:numeric(12,2);not null"`
	OvertimePay     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Bonuses         float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Allowances      float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Tax             float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SocialSecurity  float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OtherDeductions float64 `gorm:"type:numeric(12,2);not null;default:0"`

	// Derived server-side, never accepted from the client.
	GrossSalary     float64 `gorm:"type:numeric(12,2);not null"`
	TotalDeductions float64 `gorm:"type:numeric(12,2);not null"`
	NetSalary       float64 `gorm:"type:numeric(12,2);not null"`

	Currency       string  `gorm:"type:varchar(3);not null;default:'EUR'"`
	WorkedHours    float64 `gorm:"type:numeric(6,1);not null;default:0"`
	OvertimeHours  float64 `gorm:"type:numeric(6,1);not null;default:0"`
	LeaveDaysTaken float64 `gorm:"type:numeric(5,1);not null;default:0"`

	Status           string     `gorm:"type:varchar(20);not null;default:'draft'"`
	PaymentMethod    string     `gorm:"type:varchar(50)"`
	PaymentDate      *time.Time `gorm:"type:date"`
	PaymentReference string     `gorm:"type:varchar(255)"`
	Notes            string     `gorm:"type:text"`

	PayrollPeriod *PayrollPeriod `gorm:"foreignKey:PayrollPeriodID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// settle recomputes the derived amounts from the component fields.
func (p *Payslip) settle() {
	p.GrossSalary = p.BaseSalary + p.OvertimePay + p.Bonuses + p.Allowances
	p.TotalDeductions = p.Tax + p.SocialSecurity + p.OtherDeductions
	p.NetSalary = p.GrossSalary - p.TotalDeductions
}
