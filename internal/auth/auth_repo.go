package auth

import (
	"context"

	"rota-console/internal/domain"
	"rota-console/internal/gateway"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

// Repository is the Gateway's account surface.
type Repository interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error)
	Register(ctx context.Context, req domain.RegisterUser) (domain.UserProfile, error)
	ChangePassword(ctx context.Context, req domain.ChangePassword) error
	Me(ctx context.Context) (domain.UserProfile, error)
}

func NewRepository(client *gateway.Client) Repository {
	return client
}
