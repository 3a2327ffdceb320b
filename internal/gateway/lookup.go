package gateway

import (
	"context"
	"net/http"

	"rota-console/internal/domain"
)

func (c *Client) LeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	var out []domain.LeaveType
	if err := c.doJSON(ctx, "lookup.leave_types", http.MethodGet, "/leavetypes", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	var out []domain.Team
	if err := c.doJSON(ctx, "lookup.teams", http.MethodGet, "/teams", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Employees(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.doJSON(ctx, "lookup.employees", http.MethodGet, "/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
