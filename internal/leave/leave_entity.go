package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Approver kinds, stored next to the approver id so the row says which table
// the id points at.
const (
	ApproverKindAdmin    = "admin"
	ApproverKindEmployee = "employee"
)

type LeaveType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_leave_type_org_name"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_type_org_name"`
	Description    string    `gorm:"type:text"`

	DefaultDaysPerYear float64 `gorm:"type:numeric(5,1);not null;default:0"`
	IsPaid             bool    `gorm:"not null;default:true"`
	RequiresApproval   bool    `gorm:"not null;default:true"`
	// Zero means unlimited.
	MaxConsecutiveDays float64 `gorm:"type:numeric(5,1);not null;default:0"`
	Color              string  `gorm:"type:varchar(7);default:'#3B82F6'"`
	IsActive           bool    `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// LeaveBalance is the per-year ledger row. used and pending only move inside
// the same transaction as the request status that justifies the move.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	Year        int       `gorm:"not null;uniqueIndex:uq_leave_balance_employee_type_year"`

	TotalDays   float64 `gorm:"type:numeric(5,1);not null;default:0"`
	UsedDays    float64 `gorm:"type:numeric(5,1);not null;default:0"`
	PendingDays float64 `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

func (b *LeaveBalance) AvailableDays() float64 {
	return b.TotalDays - b.UsedDays - b.PendingDays
}

type LeaveRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveTypeID    uuid.UUID `gorm:"type:uuid;not null"`

	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	StartHalfDay bool      `gorm:"not null;default:false"`
	EndHalfDay   bool      `gorm:"not null;default:false"`
	TotalDays    float64   `gorm:"type:numeric(5,1);not null"`
	Reason       string    `gorm:"type:text"`

	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApproverKind  *string    `gorm:"type:varchar(20)"`
	ApproverID    *uuid.UUID `gorm:"type:uuid"`
	ApprovalDate  *time.Time
	ApprovalNotes string `gorm:"type:text"`

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (r *LeaveRequest) IsTerminal() bool {
	return r.Status != StatusPending
}

// SpanDays is the calendar span with half-day flags each shaving half a day.
func SpanDays(start, end time.Time, startHalf, endHalf bool) float64 {
	days := float64(end.Sub(start)/(24*time.Hour)) + 1
	if startHalf {
		days -= 0.5
	}
	if endHalf {
		days -= 0.5
	}
	return days
}
