package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// gatewayTimeLayouts are tried in order. Values without an offset are the
// Gateway's database DateTimes and are read as UTC; fractional seconds are
// accepted by every layout.
var gatewayTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// GatewayTime decodes the timestamp shapes the Gateway emits. It encodes as
// RFC 3339 like time.Time.
type GatewayTime struct {
	time.Time
}

func ParseGatewayTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range gatewayTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized gateway timestamp %q", raw)
}

func (t *GatewayTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("gateway timestamp: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseGatewayTime(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t GatewayTime) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

func optionalTime(t *GatewayTime) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func (l *LeaveRequest) UnmarshalJSON(b []byte) error {
	type wire LeaveRequest
	aux := struct {
		*wire
		LeaveStartDateTime GatewayTime  `json:"leaveStartDateTime"`
		LeaveEndDateTime   GatewayTime  `json:"leaveEndDateTime"`
		RequestedDate      GatewayTime  `json:"requestedDate"`
		ApprovalDate       *GatewayTime `json:"approvalDate"`
	}{wire: (*wire)(l)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	l.LeaveStartDateTime = aux.LeaveStartDateTime.Time
	l.LeaveEndDateTime = aux.LeaveEndDateTime.Time
	l.RequestedDate = aux.RequestedDate.Time
	l.ApprovalDate = optionalTime(aux.ApprovalDate)
	return nil
}

func (a *OnCallAssignment) UnmarshalJSON(b []byte) error {
	type wire OnCallAssignment
	aux := struct {
		*wire
		ShiftStartDateTime GatewayTime `json:"shiftStartDateTime"`
		ShiftEndDateTime   GatewayTime `json:"shiftEndDateTime"`
	}{wire: (*wire)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.ShiftStartDateTime = aux.ShiftStartDateTime.Time
	a.ShiftEndDateTime = aux.ShiftEndDateTime.Time
	return nil
}

func (u *UpcomingOnCall) UnmarshalJSON(b []byte) error {
	type wire UpcomingOnCall
	aux := struct {
		*wire
		Date GatewayTime `json:"date"`
	}{wire: (*wire)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	u.Date = aux.Date.Time
	return nil
}

func (r *LoginResult) UnmarshalJSON(b []byte) error {
	type wire LoginResult
	aux := struct {
		*wire
		Expiration *GatewayTime `json:"expiration"`
	}{wire: (*wire)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Expiration = optionalTime(aux.Expiration)
	return nil
}

func (p *UserProfile) UnmarshalJSON(b []byte) error {
	type wire UserProfile
	aux := struct {
		*wire
		LastLogin *GatewayTime `json:"lastLogin"`
		CreatedAt GatewayTime  `json:"createdAt"`
		UpdatedAt GatewayTime  `json:"updatedAt"`
	}{wire: (*wire)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.LastLogin = optionalTime(aux.LastLogin)
	p.CreatedAt = aux.CreatedAt.Time
	p.UpdatedAt = aux.UpdatedAt.Time
	return nil
}

func (s *Shift) UnmarshalJSON(b []byte) error {
	type wire Shift
	aux := struct {
		*wire
		ShiftStartDateTime GatewayTime `json:"shiftStartDateTime"`
		ShiftEndDateTime   GatewayTime `json:"shiftEndDateTime"`
		CreatedAt          GatewayTime `json:"createdAt"`
		UpdatedAt          GatewayTime `json:"updatedAt"`
	}{wire: (*wire)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.ShiftStartDateTime = aux.ShiftStartDateTime.Time
	s.ShiftEndDateTime = aux.ShiftEndDateTime.Time
	s.CreatedAt = aux.CreatedAt.Time
	s.UpdatedAt = aux.UpdatedAt.Time
	return nil
}
