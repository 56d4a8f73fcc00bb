package events

import "time"

const EmployeeCreatedTopic = "loura.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	OrganizationID string    `json:"organization_id"`
	HireDate       string    `json:"hire_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
