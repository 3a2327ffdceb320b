package shift

import (
	"context"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, error)
	ListLeave(ctx context.Context, filter domain.LeaveRequestFilter) ([]domain.LeaveRequest, error)
}

type repository struct {
	client *gateway.Client
}

func NewRepository(client *gateway.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, error) {
	return r.client.ListShifts(ctx, filter)
}

func (r *repository) ListLeave(ctx context.Context, filter domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	return r.client.ListLeaveRequests(ctx, filter)
}
