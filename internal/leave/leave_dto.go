package leave

import (
	"strconv"
	"strings"
	"time"

	"rota-console/internal/domain"
	"rota-console/internal/identity"
	leaveerrors "rota-console/internal/leave/errors"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"
)

type CreateLeaveRequest struct {
	EmployeeID         int       `json:"employee_id" binding:"omitempty,gt=0"`
	LeaveTypeID        int       `json:"leave_type_id" binding:"required,gt=0"`
	LeaveStartDateTime time.Time `json:"leave_start_date_time" binding:"required"`
	LeaveEndDateTime   time.Time `json:"leave_end_date_time" binding:"required"`
	Reason             *string   `json:"reason" binding:"omitempty,max=500"`
}

type UpdateLeaveStatusRequest struct {
	NewStatus     domain.LeaveStatus `json:"new_status"`
	ApproverNotes *string            `json:"approver_notes" binding:"omitempty,max=500"`
}

// ListQuery is the raw query string of the list endpoint.
type ListQuery struct {
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	EmployeeID  string `form:"employee_id"`
	TeamID      string `form:"team_id"`
	LeaveTypeID string `form:"leave_type_id"`
	Status      string `form:"status"`
}

type ListFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	EmployeeID  *int
	TeamID      *int
	LeaveTypeID *int
	Status      *domain.LeaveStatus
}

// ToFilter parses the query for actor. Employee and team filters are not
// read at all for non-admins, so a malformed value there is ignored too.
func (q ListQuery) ToFilter(actor identity.Identity) (ListFilter, error) {
	var f ListFilter
	var err error

	if f.StartDate, err = parseDate(q.StartDate); err != nil {
		return ListFilter{}, err
	}
	if f.EndDate, err = parseDate(q.EndDate); err != nil {
		return ListFilter{}, err
	}
	if actor.IsAdmin() {
		if f.EmployeeID, err = parseID(q.EmployeeID, "employee_id"); err != nil {
			return ListFilter{}, err
		}
		if f.TeamID, err = parseID(q.TeamID, "team_id"); err != nil {
			return ListFilter{}, err
		}
	}
	if f.LeaveTypeID, err = parseID(q.LeaveTypeID, "leave_type_id"); err != nil {
		return ListFilter{}, err
	}
	if strings.TrimSpace(q.Status) != "" {
		status, err := domain.ParseLeaveStatus(q.Status)
		if err != nil {
			return ListFilter{}, leaveerrors.ErrInvalidStatus
		}
		f.Status = &status
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
		return nil, leaveerrors.ErrInvalidDateFormat
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

type LeaveResponse struct {
	ID               int                `json:"id"`
	EmployeeID       int                `json:"employee_id"`
	EmployeeName     string             `json:"employee_name"`
	TeamID           *int               `json:"team_id,omitempty"`
	TeamName         *string            `json:"team_name,omitempty"`
	LeaveTypeID      int                `json:"leave_type_id"`
	LeaveTypeName    string             `json:"leave_type_name"`
	StartDateTime    time.Time          `json:"leave_start_date_time"`
	EndDateTime      time.Time          `json:"leave_end_date_time"`
	Reason           *string            `json:"reason,omitempty"`
	Status           domain.LeaveStatus `json:"status"`
	StatusName       string             `json:"status_name"`
	RequestedDate    time.Time          `json:"requested_date"`
	ApproverUserID   *int               `json:"approver_user_id"`
	ApproverUsername *string            `json:"approver_username"`
	ApprovalDate     *time.Time         `json:"approval_date"`
	ApproverNotes    *string            `json:"approver_notes"`
	CanCancel        bool               `json:"can_cancel"`
}

type ListResult struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Items     []LeaveResponse `json:"items"`
	// Warning is set when the Gateway failed and Items was degraded to empty.
	Warning *response.Notice `json:"-"`
}

// LeaveDraft pre-fills the new-request form.
type LeaveDraft struct {
	EmployeeID         *int      `json:"employee_id"`
	LeaveStartDateTime time.Time `json:"leave_start_date_time"`
	LeaveEndDateTime   time.Time `json:"leave_end_date_time"`
}
