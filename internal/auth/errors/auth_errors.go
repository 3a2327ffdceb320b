package autherrors

import (
	"net/http"

	"rota-console/internal/shared/apperror"
)

var (
	ErrSessionRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Session token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session has expired, please sign in again",
		http.StatusUnauthorized,
	)

	ErrTokenRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Session has been signed out",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrLoginRejected = apperror.New(
		apperror.CodeUnauthorized,
		"Login failed",
		http.StatusUnauthorized,
	)

	ErrMissingToken = apperror.New(
		apperror.CodeServiceUnavailable,
		"The scheduling service did not issue a session token",
		http.StatusBadGateway,
	)

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"New password and confirmation do not match",
		http.StatusBadRequest,
	)

	ErrChangePasswordRejected = apperror.New(
		apperror.CodeRemoteReject,
		"Password could not be changed",
		http.StatusUnprocessableEntity,
	)

	ErrRegisterRejected = apperror.New(
		apperror.CodeRemoteReject,
		"User could not be registered",
		http.StatusUnprocessableEntity,
	)

	ErrDenylistUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Session store is unavailable, please try again later",
		http.StatusServiceUnavailable,
	)
)
