package shift

import (
	"strconv"
	"strings"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/identity"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"
	shifterrors "rota-console/internal/shift/errors"
)

// WeekQuery is the raw query string of the shift list.
type WeekQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	EmployeeID string `form:"employee_id"`
	TeamID     string `form:"team_id"`
	IsOnCall   string `form:"is_on_call"`
}

type WeekFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *int
	TeamID     *int
	IsOnCall   *bool
}

// ToFilter parses the query for actor. Employee and team filters are only
// read for Admin.
func (q WeekQuery) ToFilter(actor identity.Identity) (WeekFilter, error) {
	var f WeekFilter
	var err error

	if f.StartDate, err = parseDate(q.StartDate); err != nil {
		return WeekFilter{}, err
	}
	if f.EndDate, err = parseDate(q.EndDate); err != nil {
		return WeekFilter{}, err
	}
	if actor.IsAdmin() {
		if f.EmployeeID, err = parseID(q.EmployeeID, "employee_id"); err != nil {
			return WeekFilter{}, err
		}
		if f.TeamID, err = parseID(q.TeamID, "team_id"); err != nil {
			return WeekFilter{}, err
		}
	}
	if f.IsOnCall, err = parseBool(q.IsOnCall, "is_on_call"); err != nil {
		return WeekFilter{}, err
	}
	return f, nil
}

// CalendarQuery is what the calendar widget sends. start and end may be
// dates or full timestamps.
type CalendarQuery struct {
	Start       string `form:"start"`
	End         string `form:"end"`
	EmployeeID  string `form:"employee_id"`
	TeamID      string `form:"team_id"`
	IsOnCall    string `form:"is_on_call"`
	LeaveTypeID string `form:"leave_type_id"`
}

type CalendarFilter struct {
	Start       time.Time
	End         time.Time
	EmployeeID  *int
	TeamID      *int
	IsOnCall    *bool
	LeaveTypeID *int
}

func (q CalendarQuery) ToFilter(actor identity.Identity) (CalendarFilter, error) {
	if strings.TrimSpace(q.Start) == "" || strings.TrimSpace(q.End) == "" {
		return CalendarFilter{}, shifterrors.ErrCalendarRangeRequired
	}
	start, err := domain.ParseGatewayTime(q.Start)
	if err != nil {
		return CalendarFilter{}, shifterrors.ErrInvalidCalendarDate
	}
	end, err := domain.ParseGatewayTime(q.End)
	if err != nil {
		return CalendarFilter{}, shifterrors.ErrInvalidCalendarDate
	}
	f := CalendarFilter{Start: start.UTC(), End: end.UTC()}

	if actor.IsAdmin() {
		if f.EmployeeID, err = parseID(q.EmployeeID, "employee_id"); err != nil {
			return CalendarFilter{}, err
		}
		if f.TeamID, err = parseID(q.TeamID, "team_id"); err != nil {
			return CalendarFilter{}, err
		}
	}
	if f.IsOnCall, err = parseBool(q.IsOnCall, "is_on_call"); err != nil {
		return CalendarFilter{}, err
	}
	if f.LeaveTypeID, err = parseID(q.LeaveTypeID, "leave_type_id"); err != nil {
		return CalendarFilter{}, err
	}
	return f, nil
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, shifterrors.ErrInvalidDateFormat
	}
	return &t, nil
}

func parseID(raw, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil, apperror.InvalidField(field)
	}
	return &v, nil
}

func parseBool(raw, field string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &v, nil
}

type ShiftResponse struct {
	ID            int       `json:"id"`
	EmployeeID    int       `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	TeamID        *int      `json:"team_id,omitempty"`
	TeamName      *string   `json:"team_name,omitempty"`
	ShiftTypeID   *int      `json:"shift_type_id,omitempty"`
	ShiftTypeName *string   `json:"shift_type_name,omitempty"`
	IsOnCall      bool      `json:"is_on_call"`
	StartDateTime time.Time `json:"shift_start_date_time"`
	EndDateTime   time.Time `json:"shift_end_date_time"`
	Notes         *string   `json:"notes,omitempty"`
}

type WeekResult struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Items     []ShiftResponse `json:"items"`
	// Warning is set when the Gateway failed and Items was degraded to empty.
	Warning *response.Notice `json:"-"`
}

// CalendarLeave is an approved absence as drawn on the calendar.
type CalendarLeave struct {
	ID            int       `json:"id"`
	EmployeeID    int       `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	TeamName      *string   `json:"team_name,omitempty"`
	LeaveTypeID   int       `json:"leave_type_id"`
	LeaveTypeName string    `json:"leave_type_name"`
	StartDateTime time.Time `json:"leave_start_date_time"`
	EndDateTime   time.Time `json:"leave_end_date_time"`
	StatusName    string    `json:"status_name"`
}

func mapShift(s domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ShiftID,
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeFullName(),
		TeamID:        s.TeamID,
		TeamName:      s.TeamName,
		ShiftTypeID:   s.ShiftTypeID,
		ShiftTypeName: s.ShiftTypeName,
		IsOnCall:      s.IsOnCall,
		StartDateTime: s.ShiftStartDateTime,
		EndDateTime:   s.ShiftEndDateTime,
		Notes:         s.Notes,
	}
}

func mapLeave(l domain.LeaveRequest) CalendarLeave {
	return CalendarLeave{
		ID:            l.LeaveRequestID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeFullName(),
		TeamName:      l.TeamName,
		LeaveTypeID:   l.LeaveTypeID,
		LeaveTypeName: l.LeaveTypeName,
		StartDateTime: l.LeaveStartDateTime,
		EndDateTime:   l.LeaveEndDateTime,
		StatusName:    l.Status.String(),
	}
}
