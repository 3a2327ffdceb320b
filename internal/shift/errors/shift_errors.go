package shifterrors

import (
	"net/http"

	"rota-console/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidWeekRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrCalendarRangeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start and end are required",
		http.StatusBadRequest,
	)
	ErrInvalidCalendarDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format provided",
		http.StatusBadRequest,
	)
	ErrInvalidCalendarRange = apperror.New(
		apperror.CodeInvalidInput,
		"end must not be before start",
		http.StatusBadRequest,
	)
)
