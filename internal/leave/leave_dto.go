package leave

import (
	"time"

	"github.com/google/uuid"
)

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name" binding:"required,min=2,max=100"`
	Description        string  `json:"description" binding:"max=1000"`
	DefaultDaysPerYear float64 `json:"default_days_per_year" binding:"min=0"`
	IsPaid             *bool   `json:"is_paid"`
	RequiresApproval   *bool   `json:"requires_approval"`
	MaxConsecutiveDays float64 `json:"max_consecutive_days" binding:"min=0"`
	Color              string  `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateLeaveTypeRequest struct {
	Name               *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Description        *string  `json:"description" binding:"omitempty,max=1000"`
	DefaultDaysPerYear *float64 `json:"default_days_per_year" binding:"omitempty,min=0"`
	IsPaid             *bool    `json:"is_paid"`
	RequiresApproval   *bool    `json:"requires_approval"`
	MaxConsecutiveDays *float64 `json:"max_consecutive_days" binding:"omitempty,min=0"`
	Color              *string  `json:"color" binding:"omitempty,hexcolor"`
	IsActive           *bool    `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID                 uuid.UUID `json:"id"`
	OrganizationID     uuid.UUID `json:"organization_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	DefaultDaysPerYear float64   `json:"default_days_per_year"`
	IsPaid             bool      `json:"is_paid"`
	RequiresApproval   bool      `json:"requires_approval"`
	MaxConsecutiveDays float64   `json:"max_consecutive_days"`
	Color              string    `json:"color"`
	IsActive           bool      `json:"is_active"`
}

type SubmitLeaveRequest struct {
	LeaveTypeID  string  `json:"leave_type_id" binding:"required,uuid"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	StartHalfDay bool    `json:"start_half_day"`
	EndHalfDay   bool    `json:"end_half_day"`
	TotalDays    float64 `json:"total_days" binding:"required,gt=0"`
	Reason       string  `json:"reason" binding:"max=2000"`
}

type DecisionRequest struct {
	ApprovalNotes string `json:"approval_notes" binding:"max=2000"`
}

type AdjustBalanceRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string  `json:"leave_type_id" binding:"required,uuid"`
	Year        int     `json:"year" binding:"required,min=2000,max=2200"`
	TotalDays   float64 `json:"total_days" binding:"min=0"`
}

type LeaveRequestResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	EmployeeID     uuid.UUID  `json:"employee_id"`
	LeaveTypeID    uuid.UUID  `json:"leave_type_id"`
	LeaveTypeName  string     `json:"leave_type_name,omitempty"`
	LeaveTypeColor string     `json:"leave_type_color,omitempty"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	StartHalfDay   bool       `json:"start_half_day"`
	EndHalfDay     bool       `json:"end_half_day"`
	TotalDays      float64    `json:"total_days"`
	Reason         string     `json:"reason,omitempty"`
	Status         string     `json:"status"`
	ApproverKind   *string    `json:"approver_kind,omitempty"`
	ApproverID     *uuid.UUID `json:"approver_id,omitempty"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	ApprovalNotes  string     `json:"approval_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type LeaveBalanceResponse struct {
	ID            uuid.UUID `json:"id"`
	EmployeeID    uuid.UUID `json:"employee_id"`
	LeaveTypeID   uuid.UUID `json:"leave_type_id"`
	Year          int       `json:"year"`
	TotalDays     float64   `json:"total_days"`
	UsedDays      float64   `json:"used_days"`
	PendingDays   float64   `json:"pending_days"`
	AvailableDays float64   `json:"available_days"`
}

func mapTypeToResponse(lt *LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID,
		OrganizationID:     lt.OrganizationID,
		Name:               lt.Name,
		Description:        lt.Description,
		DefaultDaysPerYear: lt.DefaultDaysPerYear,
		IsPaid:             lt.IsPaid,
		RequiresApproval:   lt.RequiresApproval,
		MaxConsecutiveDays: lt.MaxConsecutiveDays,
		Color:              lt.Color,
		IsActive:           lt.IsActive,
	}
}

func mapRequestToResponse(r *LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		EmployeeID:     r.EmployeeID,
		LeaveTypeID:    r.LeaveTypeID,
		StartDate:      r.StartDate.Format("2006-01-02"),
		EndDate:        r.EndDate.Format("2006-01-02"),
		StartHalfDay:   r.StartHalfDay,
		EndHalfDay:     r.EndHalfDay,
		TotalDays:      r.TotalDays,
		Reason:         r.Reason,
		Status:         r.Status,
		ApproverKind:   r.ApproverKind,
		ApproverID:     r.ApproverID,
		ApprovalDate:   r.ApprovalDate,
		ApprovalNotes:  r.ApprovalNotes,
		CreatedAt:      r.CreatedAt,
	}
	if r.LeaveType != nil {
		resp.LeaveTypeName = r.LeaveType.Name
		resp.LeaveTypeColor = r.LeaveType.Color
	}
	return resp
}

func mapBalanceToResponse(b *LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		LeaveTypeID:   b.LeaveTypeID,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		PendingDays:   b.PendingDays,
		AvailableDays: b.AvailableDays(),
	}
}
