package leaveerrors

import (
	"net/http"

	"rota-console/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end time must be after start time",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidListRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave status",
		http.StatusBadRequest,
	)
	ErrFileForSelfOnly = apperror.New(
		apperror.CodeInvalidInput,
		"you may only submit leave requests for yourself",
		http.StatusBadRequest,
	)
	ErrInvalidTargetStatus = apperror.New(
		apperror.CodeInvalidInput,
		"new status must be Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrEmployeeNotLinked = apperror.New(
		apperror.CodeConfiguration,
		"your account is not linked to an employee record",
		http.StatusInternalServerError,
	)
	ErrDecisionAdminOnly = apperror.New(
		apperror.CodeForbidden,
		"only administrators may approve or reject leave requests",
		http.StatusForbidden,
	)
	ErrCancelNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"you do not have permission to cancel this request or it cannot be cancelled",
		http.StatusForbidden,
	)
	ErrViewNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"access denied to view this leave request",
		http.StatusForbidden,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrNoLongerPending = apperror.New(
		apperror.CodeConflict,
		"leave request is no longer pending, reload and try again",
		http.StatusConflict,
	)
	ErrNoLongerCancellable = apperror.New(
		apperror.CodeConflict,
		"leave request can no longer be cancelled, reload and try again",
		http.StatusConflict,
	)
	ErrLeaveRejectedByGateway = apperror.New(
		apperror.CodeRemoteReject,
		"leave request was rejected, check for overlapping leave or shifts",
		http.StatusUnprocessableEntity,
	)
)
