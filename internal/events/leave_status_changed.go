package events

import (
	"context"
	"time"
)

const LeaveStatusChangedTopic = "rota.leave.status.v1"

const (
	EventLeaveRequested = "leave_requested"
	EventLeaveDecided   = "leave_decided"
	EventLeaveCancelled = "leave_cancelled"
)

// LeaveStatusChangedEvent records a leave transition that the Gateway accepted.
type LeaveStatusChangedEvent struct {
	EventType       string    `json:"event_type"`
	LeaveRequestID  int       `json:"leave_request_id"`
	EmployeeID      int       `json:"employee_id"`
	LeaveTypeID     int       `json:"leave_type_id"`
	FromStatus      string    `json:"from_status,omitempty"`
	Status          string    `json:"status"`
	ActorKind       string    `json:"actor_kind"`
	ActorEmployeeID *int      `json:"actor_employee_id,omitempty"`
	ActorUsername   string    `json:"actor_username,omitempty"`
	RequestID       string    `json:"request_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishLeaveStatusChanged(ctx context.Context, event LeaveStatusChangedEvent) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishLeaveStatusChanged(context.Context, LeaveStatusChangedEvent) error {
	return nil
}
