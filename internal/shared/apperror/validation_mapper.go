package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns leave_type_id into "Leave Type Id".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError reports the first failing field of a binding error.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "gt":
		return fieldMessage("%s must be greater than %s", field, e.Param())
	case "min", "max":
		bound := "at least"
		if e.Tag() == "max" {
			bound = "at most"
		}
		if e.Kind() == reflect.String {
			return fieldMessage("%s must be "+bound+" %s characters", field, e.Param())
		}
		return fieldMessage("%s must be "+bound+" %s", field, e.Param())
	case "eqfield":
		return fieldMessage("%s must match %s", field, formatFieldName(e.Param()))
	default:
		return InvalidField(field)
	}
}

func fieldMessage(format, field, param string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, field, param), http.StatusBadRequest)
}
