package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LeaveStatus travels as an int, the way the Gateway serializes enums.
type LeaveStatus int

const (
	LeaveStatusPending LeaveStatus = iota
	LeaveStatusApproved
	LeaveStatusRejected
	LeaveStatusCancelled
)

var leaveStatusNames = [...]string{"Pending", "Approved", "Rejected", "Cancelled"}

func (s LeaveStatus) String() string {
	if s.Valid() {
		return leaveStatusNames[s]
	}
	return "LeaveStatus(" + strconv.Itoa(int(s)) + ")"
}

func (s LeaveStatus) Valid() bool {
	return s >= LeaveStatusPending && s <= LeaveStatusCancelled
}

// Terminal reports whether no transition leaves s.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusRejected || s == LeaveStatusCancelled
}

// CanTransitionTo encodes the lifecycle:
//
//	Pending  -> Approved | Rejected | Cancelled
//	Approved -> Cancelled
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	switch s {
	case LeaveStatusPending:
		return next == LeaveStatusApproved || next == LeaveStatusRejected || next == LeaveStatusCancelled
	case LeaveStatusApproved:
		return next == LeaveStatusCancelled
	default:
		return false
	}
}

// ParseLeaveStatus accepts a numeric value or a case-insensitive name.
func ParseLeaveStatus(raw string) (LeaveStatus, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		s := LeaveStatus(n)
		if !s.Valid() {
			return 0, fmt.Errorf("unknown leave status %d", n)
		}
		return s, nil
	}
	for i, name := range leaveStatusNames {
		if strings.EqualFold(name, raw) {
			return LeaveStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown leave status %q", raw)
}

func (s LeaveStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

func (s *LeaveStatus) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		raw = string(b)
	}
	parsed, err := ParseLeaveStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// LeaveRequest is the Gateway's projection of a leave request.
type LeaveRequest struct {
	LeaveRequestID     int         `json:"leaveRequestId"`
	EmployeeID         int         `json:"employeeId"`
	EmployeeFirstName  string      `json:"employeeFirstName"`
	EmployeeLastName   string      `json:"employeeLastName"`
	TeamID             *int        `json:"teamId,omitempty"`
	TeamName           *string     `json:"teamName,omitempty"`
	LeaveTypeID        int         `json:"leaveTypeId"`
	LeaveTypeName      string      `json:"leaveTypeName"`
	LeaveStartDateTime time.Time   `json:"leaveStartDateTime"`
	LeaveEndDateTime   time.Time   `json:"leaveEndDateTime"`
	Reason             *string     `json:"reason,omitempty"`
	Status             LeaveStatus `json:"status"`
	RequestedDate      time.Time   `json:"requestedDate"`
	ApproverUserID     *int        `json:"approverUserId,omitempty"`
	ApproverUsername   *string     `json:"approverUsername,omitempty"`
	ApprovalDate       *time.Time  `json:"approvalDate,omitempty"`
	ApproverNotes      *string     `json:"approverNotes,omitempty"`
}

func (l LeaveRequest) EmployeeFullName() string {
	return strings.TrimSpace(l.EmployeeFirstName + " " + l.EmployeeLastName)
}

type CreateLeaveRequest struct {
	EmployeeID         int       `json:"employeeId"`
	LeaveTypeID        int       `json:"leaveTypeId"`
	LeaveStartDateTime time.Time `json:"leaveStartDateTime"`
	LeaveEndDateTime   time.Time `json:"leaveEndDateTime"`
	Reason             *string   `json:"reason,omitempty"`
}

type UpdateLeaveStatus struct {
	NewStatus     LeaveStatus `json:"newStatus"`
	ApproverNotes *string     `json:"approverNotes,omitempty"`
}

// LeaveRequestFilter mirrors the Gateway list query. Nil fields are omitted.
type LeaveRequestFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	EmployeeID  *int
	TeamID      *int
	LeaveTypeID *int
	Status      *LeaveStatus
}
