package events

import "time"

const LeaveDecidedTopic = "loura.leave.decision.v1"

// LeaveDecidedEvent fires when a leave request leaves the pending state.
type LeaveDecidedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	OrganizationID string    `json:"organization_id"`
	Status         string    `json:"status"`
	TotalDays      float64   `json:"total_days"`
	OccurredAt     time.Time `json:"occurred_at"`
}
