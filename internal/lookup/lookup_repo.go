package lookup

import (
	"context"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
)

//go:generate mockgen -source=lookup_repo.go -destination=mock/lookup_repo_mock.go -package=mock
type Repository interface {
	LeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
	Teams(ctx context.Context) ([]domain.Team, error)
	Employees(ctx context.Context) ([]domain.Employee, error)
}

func NewRepository(client *gateway.Client) Repository {
	return client
}
