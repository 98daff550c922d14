package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// Client-facing detail messages.
const (
	MsgTaskNotFound        = "Task not found"
	MsgNotFound            = "Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgValidationError     = "Validation error"
	MsgInternalServerError = "Internal Server Error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgInternalServerError

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound

	case store.IsNotFoundError(err):
		return MsgNotFound

	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgValidationError

	default:
		return MsgInternalServerError
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// full error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// DecodeErrorDetails converts a JSON decoding failure of the request body
// into validation details.
func DecodeErrorDetails(err error) []shared.ValidationErrorDetail {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return []shared.ValidationErrorDetail{{
				Loc:  []string{"body"},
				Msg:  "value is not a valid dict",
				Type: "type_error.dict",
			}}
		}
		return []shared.ValidationErrorDetail{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("invalid type: expected %s", typeErr.Type.String()),
			Type: "type_error",
		}}
	}

	msg := "invalid JSON body"
	if errors.Is(err, io.EOF) {
		msg = "request body is empty"
	}
	return []shared.ValidationErrorDetail{{
		Loc:  []string{"body"},
		Msg:  msg,
		Type: "value_error.jsondecode",
	}}
}

// ValidationErrorDetails converts validator field errors into validation
// details, one per failing field. Errors that are not validator errors
// produce a single generic body error.
func ValidationErrorDetails(err error) []shared.ValidationErrorDetail {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []shared.ValidationErrorDetail{{
			Loc:  []string{"body"},
			Msg:  MsgValidationError,
			Type: "value_error",
		}}
	}

	details := make([]shared.ValidationErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, typ := getValidationTagMessage(fe)
		details = append(details, shared.ValidationErrorDetail{
			Loc:  []string{"body", fe.Field()},
			Msg:  msg,
			Type: typ,
		})
	}
	return details
}

// getValidationTagMessage maps validation tags to user-friendly error messages and error types
func getValidationTagMessage(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fe.Param()),
			"value_error.any_str.min_length"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param()),
			"value_error.any_str.max_length"
	default:
		return "validation failed", "value_error"
	}
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowed answers requests whose route exists for other methods.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
