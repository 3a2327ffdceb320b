package gateway

import (
	"errors"
	"net/http"

	"rota-console/internal/shared/apperror"
)

// ToAppError maps a Client error onto the console's error taxonomy. Callers
// that give a status a narrower meaning check StatusCode first.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		return apperror.ErrInternal.WithErr(err)
	}

	switch status := gwErr.StatusCode; {
	case gwErr.Decode:
		return apperror.ErrRemoteContract.WithErr(err)
	case status == 0:
		return apperror.ErrRemoteUnavailable.WithErr(err)
	case status == http.StatusUnauthorized:
		return apperror.ErrUnauthorized.WithErr(err)
	case status == http.StatusForbidden:
		return apperror.ErrAccessDenied.WithErr(err)
	case status == http.StatusNotFound:
		return apperror.ErrNotFound.WithErr(err)
	case status == http.StatusBadRequest, status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		rejected := apperror.ErrRemoteRejected.WithErr(err)
		if gwErr.Detail != "" {
			rejected.Message = gwErr.Detail
		}
		return rejected
	case status >= http.StatusInternalServerError:
		return apperror.ErrRemoteUnavailable.WithErr(err)
	default:
		return apperror.ErrInternal.WithErr(err)
	}
}
