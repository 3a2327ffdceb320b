package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"rota-console/internal/domain"
)

func (c *Client) PendingLeaveCount(ctx context.Context, teamID *int) ([]domain.PendingCount, error) {
	q := url.Values{}
	setTeam(q, teamID)

	var out []domain.PendingCount
	if err := c.doJSON(ctx, "dashboard.pending_count", http.MethodGet, "/dashboard/leave/pendingcount", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpcomingOnCall(ctx context.Context, start, end time.Time, teamID *int) ([]domain.UpcomingOnCall, error) {
	q := dateRange(start, end)
	setTeam(q, teamID)

	var out []domain.UpcomingOnCall
	if err := c.doJSON(ctx, "dashboard.oncall", http.MethodGet, "/dashboard/oncall/upcoming", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LeaveSummary(ctx context.Context, query domain.LeaveSummaryQuery) ([]domain.LeaveSummary, error) {
	var out []domain.LeaveSummary
	if err := c.doJSON(ctx, "dashboard.leave_summary", http.MethodGet, "/dashboard/leave/summary", query.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ShiftTypeDistribution(ctx context.Context, start, end time.Time, teamID *int) ([]domain.ShiftTypeDistribution, error) {
	q := dateRange(start, end)
	setTeam(q, teamID)

	var out []domain.ShiftTypeDistribution
	if err := c.doJSON(ctx, "dashboard.shift_distribution", http.MethodGet, "/dashboard/shifts/typedistribution", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dateRange(start, end time.Time) url.Values {
	q := url.Values{}
	q.Set("startDate", start.Format(domain.DateLayout))
	q.Set("endDate", end.Format(domain.DateLayout))
	return q
}

func setTeam(q url.Values, teamID *int) {
	if teamID != nil {
		q.Set("teamId", strconv.Itoa(*teamID))
	}
}
