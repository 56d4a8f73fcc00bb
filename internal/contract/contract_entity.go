package contract

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypePermanent  = "permanent"
	TypeFixedTerm  = "fixed_term"
	TypePartTime   = "part_time"
	TypeInternship = "internship"
	TypeFreelance  = "freelance"
)

const (
	PeriodHourly  = "hourly"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

type Contract struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContractType    string     `gorm:"type:varchar(20);not null"`
	StartDate       time.Time  `gorm:"type:date;not null"`
	EndDate         *time.Time `gorm:"type:date"`
	BaseSalary      float64    `gorm:"type:numeric(12,2);not null"`
	Currency        string     `gorm:"type:varchar(3);not null;default:'EUR'"`
	SalaryPeriod    string     `gorm:"type:varchar(10);not null;default:'monthly'"`
	HoursPerWeek    float64    `gorm:"type:numeric(4,1)"`
	Description     string     `gorm:"type:text"`
	ContractFileURL *string    `gorm:"type:varchar(500)"`
	IsActive        bool       `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Contract) TableName() string {
	return "contracts"
}
