package leave

import (
	"context"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, filter domain.LeaveRequestFilter) ([]domain.LeaveRequest, error)
	Get(ctx context.Context, id int) (domain.LeaveRequest, error)
	Create(ctx context.Context, req domain.CreateLeaveRequest) (domain.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int, req domain.UpdateLeaveStatus) (domain.LeaveRequest, error)
	Cancel(ctx context.Context, id int) error
}

// repository reads and writes leave requests through the Gateway; it holds
// no state of its own.
type repository struct {
	client *gateway.Client
}

func NewRepository(client *gateway.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context, filter domain.LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	return r.client.ListLeaveRequests(ctx, filter)
}

func (r *repository) Get(ctx context.Context, id int) (domain.LeaveRequest, error) {
	return r.client.GetLeaveRequest(ctx, id)
}

func (r *repository) Create(ctx context.Context, req domain.CreateLeaveRequest) (domain.LeaveRequest, error) {
	return r.client.CreateLeaveRequest(ctx, req)
}

func (r *repository) UpdateStatus(ctx context.Context, id int, req domain.UpdateLeaveStatus) (domain.LeaveRequest, error) {
	return r.client.UpdateLeaveStatus(ctx, id, req)
}

func (r *repository) Cancel(ctx context.Context, id int) error {
	return r.client.CancelLeaveRequest(ctx, id)
}
