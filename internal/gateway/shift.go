package gateway

import (
	"context"
	"net/http"

	"rota-console/internal/domain"
)

func (c *Client) ListShifts(ctx context.Context, f domain.ShiftFilter) ([]domain.Shift, error) {
	var out []domain.Shift
	if err := c.doJSON(ctx, "shift.list", http.MethodGet, "/shifts", f.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

