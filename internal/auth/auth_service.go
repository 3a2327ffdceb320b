package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	autherrors "rota-console/internal/auth/errors"
	"rota-console/internal/domain"
	"rota-console/internal/gateway"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (Session, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context) (ProfileResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Register(ctx context.Context, req RegisterRequest) (ProfileResponse, error)
}

type service struct {
	repo       Repository
	revoker    Revoker
	sessionTTL time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

// NewService wires the account flows. revoker may be nil, in which case
// logout only clears the browser cookie.
func NewService(repo Repository, revoker Revoker, sessionTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &service{repo: repo, revoker: revoker, sessionTTL: sessionTTL, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (Session, error) {
	username := strings.TrimSpace(req.Username)

	result, err := s.repo.Login(ctx, domain.LoginRequest{Username: username, Password: req.Password})
	if err != nil {
		switch gateway.StatusCode(err) {
		case http.StatusBadRequest, http.StatusUnauthorized:
			s.logger.Info("login refused", zap.String("username", username))
			return Session{}, autherrors.ErrInvalidCredentials.WithErr(err)
		}
		return Session{}, gateway.ToAppError(err)
	}

	if !result.Success {
		s.logger.Info("login refused", zap.String("username", username), zap.String("reason", result.Message))
		rejected := autherrors.ErrLoginRejected.WithErr(nil)
		if msg := strings.TrimSpace(result.Message); msg != "" {
			rejected.Message = msg
		}
		return Session{}, rejected
	}
	if result.Token == nil || strings.TrimSpace(*result.Token) == "" {
		s.logger.Error("login succeeded without a token", zap.String("username", username))
		return Session{}, autherrors.ErrMissingToken
	}

	expiresAt := s.now().Add(s.sessionTTL)
	if result.Expiration != nil {
		expiresAt = *result.Expiration
	}

	s.logger.Info("login succeeded", zap.String("username", username), zap.Time("expires_at", expiresAt))
	return Session{Username: username, Token: *result.Token, ExpiresAt: expiresAt}, nil
}

func (s *service) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}

	ttl := s.sessionTTL
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("token revocation failed", zap.Error(err))
		return autherrors.ErrDenylistUnavailable.WithErr(err)
	}
	return nil
}

func (s *service) Me(ctx context.Context) (ProfileResponse, error) {
	profile, err := s.repo.Me(ctx)
	if err != nil {
		return ProfileResponse{}, gateway.ToAppError(err)
	}
	return mapProfile(profile), nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmNewPassword {
		return autherrors.ErrPasswordMismatch
	}

	err := s.repo.ChangePassword(ctx, domain.ChangePassword{
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		return rejectedOr(err, autherrors.ErrChangePasswordRejected)
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (ProfileResponse, error) {
	if req.Password != req.ConfirmPassword {
		return ProfileResponse{}, autherrors.ErrPasswordMismatch
	}

	profile, err := s.repo.Register(ctx, domain.RegisterUser{
		EmployeeID:      req.EmployeeID,
		Username:        strings.TrimSpace(req.Username),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		RoleID:          req.RoleID,
	})
	if err != nil {
		return ProfileResponse{}, rejectedOr(err, autherrors.ErrRegisterRejected)
	}

	s.logger.Info("user registered", zap.String("username", profile.Username), zap.Int("employee_id", profile.EmployeeID))
	return mapProfile(profile), nil
}

// rejectedOr maps Gateway validation failures onto rejected, keeping the
// Gateway's own explanation when it sent one.
func rejectedOr(err error, rejected *apperror.AppError) error {
	switch gateway.StatusCode(err) {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		out := rejected.WithErr(err)
		if detail := gateway.Detail(err); detail != "" {
			out.Message = detail
		}
		return out
	}
	return gateway.ToAppError(err)
}

func mapProfile(p domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:       p.UserID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeFullName,
		Username:     p.Username,
		RoleID:       p.RoleID,
		Role:         p.RoleName,
		IsActive:     p.IsActive,
		LastLogin:    p.LastLogin,
	}
}
