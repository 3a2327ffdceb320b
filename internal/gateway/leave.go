package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"rota-console/internal/domain"
)

func (c *Client) ListLeaveRequests(ctx context.Context, f domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	q := url.Values{}
	if f.StartDate != nil {
		q.Set("startDate", f.StartDate.Format(domain.DateLayout))
	}
	if f.EndDate != nil {
		q.Set("endDate", f.EndDate.Format(domain.DateLayout))
	}
	if f.EmployeeID != nil {
		q.Set("employeeId", strconv.Itoa(*f.EmployeeID))
	}
	if f.TeamID != nil {
		q.Set("teamId", strconv.Itoa(*f.TeamID))
	}
	if f.LeaveTypeID != nil {
		q.Set("leaveTypeId", strconv.Itoa(*f.LeaveTypeID))
	}
	if f.Status != nil {
		q.Set("status", strconv.Itoa(int(*f.Status)))
	}

	var out []domain.LeaveRequest
	if err := c.doJSON(ctx, "leave.list", http.MethodGet, "/leaverequests", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLeaveRequest(ctx context.Context, id int) (domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	err := c.doJSON(ctx, "leave.get", http.MethodGet, "/leaverequests/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateLeaveRequest(ctx context.Context, req domain.CreateLeaveRequest) (domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	err := c.doJSON(ctx, "leave.create", http.MethodPost, "/leaverequests", nil, req, &out)
	return out, err
}

func (c *Client) UpdateLeaveStatus(ctx context.Context, id int, req domain.UpdateLeaveStatus) (domain.LeaveRequest, error) {
	var out domain.LeaveRequest
	err := c.doJSON(ctx, "leave.update_status", http.MethodPatch, "/leaverequests/"+strconv.Itoa(id)+"/status", nil, req, &out)
	return out, err
}

// CancelLeaveRequest expects 204 No Content.
func (c *Client) CancelLeaveRequest(ctx context.Context, id int) error {
	return c.doJSON(ctx, "leave.cancel", http.MethodPatch, "/leaverequests/"+strconv.Itoa(id)+"/cancel", nil, nil, nil)
}
