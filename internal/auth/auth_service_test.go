package auth_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rota-console/internal/auth"
	autherrors "rota-console/internal/auth/errors"
	authMock "rota-console/internal/auth/mock"
	"rota-console/internal/domain"
	"rota-console/internal/gateway"
	"rota-console/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type recordingRevoker struct {
	tokenID string
	ttl     time.Duration
	err     error
}

func (r *recordingRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.tokenID, r.ttl = tokenID, ttl
	return r.err
}

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*authMock.MockRepository, *recordingRevoker, auth.Service) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	revoker := &recordingRevoker{}
	return repo, revoker, auth.NewServiceWithClock(repo, revoker, time.Hour, func() time.Time { return now })
}

func TestService_Login(t *testing.T) {
	t.Run("success uses gateway expiry", func(t *testing.T) {
		repo, _, svc := setup(t)
		exp := now.Add(30 * time.Minute)
		repo.EXPECT().Login(gomock.Any(), domain.LoginRequest{Username: "jane", Password: "secret"}).
			Return(domain.LoginResult{Success: true, Token: strPtr("tok"), Expiration: &exp}, nil)

		session, err := svc.Login(context.Background(), auth.LoginRequest{Username: " jane ", Password: "secret"})

		assert.NoError(t, err)
		assert.Equal(t, auth.Session{Username: "jane", Token: "tok", ExpiresAt: exp}, session)
	})

	t.Run("missing expiry falls back to session ttl", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(domain.LoginResult{Success: true, Token: strPtr("tok")}, nil)

		session, err := svc.Login(context.Background(), auth.LoginRequest{Username: "jane", Password: "secret"})

		assert.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)
	})

	t.Run("gateway says no", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(domain.LoginResult{Success: false, Message: "Account disabled"}, nil)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "jane", Password: "secret"})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, "Account disabled", httpErr.Message)
	})

	t.Run("401 is invalid credentials", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(domain.LoginResult{}, &gateway.Error{Op: "auth.login", StatusCode: http.StatusUnauthorized})

		_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "jane", Password: "bad"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("success without token", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Login(gomock.Any(), gomock.Any()).Return(domain.LoginResult{Success: true}, nil)

		_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "jane", Password: "secret"})

		assert.ErrorIs(t, err, autherrors.ErrMissingToken)
	})

	t.Run("gateway down", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(domain.LoginResult{}, &gateway.Error{Op: "auth.login", Err: errors.New("dial tcp: refused")})

		_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "jane", Password: "secret"})

		assert.ErrorIs(t, err, apperror.ErrRemoteUnavailable)
	})
}

func TestService_Logout(t *testing.T) {
	t.Run("revokes for the remaining lifetime", func(t *testing.T) {
		_, revoker, svc := setup(t)

		err := svc.Logout(context.Background(), "tok-1", now.Add(20*time.Minute))

		assert.NoError(t, err)
		assert.Equal(t, "tok-1", revoker.tokenID)
		assert.Equal(t, 20*time.Minute, revoker.ttl)
	})

	t.Run("unknown expiry uses session ttl", func(t *testing.T) {
		_, revoker, svc := setup(t)

		assert.NoError(t, svc.Logout(context.Background(), "tok-1", time.Time{}))
		assert.Equal(t, time.Hour, revoker.ttl)
	})

	t.Run("already expired token is not stored", func(t *testing.T) {
		_, revoker, svc := setup(t)

		assert.NoError(t, svc.Logout(context.Background(), "tok-1", now.Add(-time.Second)))
		assert.Empty(t, revoker.tokenID)
	})

	t.Run("store failure", func(t *testing.T) {
		_, revoker, svc := setup(t)
		revoker.err = errors.New("redis down")

		err := svc.Logout(context.Background(), "tok-1", now.Add(time.Minute))

		assert.ErrorIs(t, err, autherrors.ErrDenylistUnavailable)
	})

	t.Run("no revoker configured", func(t *testing.T) {
		svc := auth.NewService(nil, nil, time.Hour)
		assert.NoError(t, svc.Logout(context.Background(), "tok-1", now.Add(time.Minute)))
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("mismatch never reaches gateway", func(t *testing.T) {
		_, _, svc := setup(t)

		err := svc.ChangePassword(context.Background(), auth.ChangePasswordRequest{
			CurrentPassword: "old", NewPassword: "new-password", ConfirmNewPassword: "other-password",
		})

		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("gateway rejection keeps its detail", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).
			Return(&gateway.Error{Op: "auth.change_password", StatusCode: http.StatusBadRequest, Detail: "Current password is incorrect."})

		err := svc.ChangePassword(context.Background(), auth.ChangePasswordRequest{
			CurrentPassword: "old", NewPassword: "new-password", ConfirmNewPassword: "new-password",
		})

		assert.Equal(t, apperror.CodeRemoteReject, apperror.CodeOf(err))
		assert.Equal(t, "Current password is incorrect.", apperror.ToHTTP(err).Message)
	})
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Register(gomock.Any(), domain.RegisterUser{
			EmployeeID: 7, Username: "jane", Password: "password1", ConfirmPassword: "password1", RoleID: 2,
		}).Return(domain.UserProfile{UserID: 3, EmployeeID: 7, Username: "jane", RoleName: "Employee", IsActive: true}, nil)

		got, err := svc.Register(context.Background(), auth.RegisterRequest{
			EmployeeID: 7, Username: "jane", Password: "password1", ConfirmPassword: "password1", RoleID: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, got.UserID)
		assert.Equal(t, "Employee", got.Role)
	})

	t.Run("username taken", func(t *testing.T) {
		repo, _, svc := setup(t)
		repo.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(domain.UserProfile{}, &gateway.Error{Op: "auth.register", StatusCode: http.StatusConflict})

		_, err := svc.Register(context.Background(), auth.RegisterRequest{
			EmployeeID: 7, Username: "jane", Password: "password1", ConfirmPassword: "password1", RoleID: 2,
		})

		assert.ErrorIs(t, err, autherrors.ErrRegisterRejected)
	})
}
