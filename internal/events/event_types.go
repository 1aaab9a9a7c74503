package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeAdded    EventType = "employee_added"
	EventEmployeeReplaced EventType = "employee_replaced"
	EventSearchCompleted  EventType = "search_completed"
	EventSearchFailed     EventType = "search_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeChangedPayload describes an added or replaced record.
type EmployeeChangedPayload struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Location     string `json:"location"`
}

// SearchCompletedPayload describes a finished search invocation.
type SearchCompletedPayload struct {
	Query       string `json:"query"`
	Outcome     string `json:"outcome"`
	ResultCount int    `json:"result_count"`
	Rejected    int    `json:"rejected"`
}

// SearchFailedPayload describes a terminal search failure.
type SearchFailedPayload struct {
	Query  string `json:"query"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}
