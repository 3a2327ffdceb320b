package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrAccessDenied = New(
		CodeAccessDenied,
		"The scheduling service denied access to this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrRemoteRejected = New(
		CodeRemoteReject,
		"The scheduling service rejected the request",
		http.StatusUnprocessableEntity,
	)

	ErrRemoteUnavailable = New(
		CodeServiceUnavailable,
		"The scheduling service is unavailable, please try again later",
		http.StatusServiceUnavailable,
	)

	ErrRemoteContract = New(
		CodeBadGateway,
		"The scheduling service returned a response the console could not read",
		http.StatusBadGateway,
	)

	ErrConfiguration = New(
		CodeConfiguration,
		"Your account is not linked to an employee record",
		http.StatusInternalServerError,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
