package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

// getPathTaskID extracts an integer task ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID
//   - (0, error): A domain.ValidationError wrapping domain.ErrInvalidID if the
//     parameter is missing or not an integer
func getPathTaskID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "is not a valid integer", domain.ErrInvalidID)
	}

	return id, nil
}

// pathIDValidationDetails is the 422 body for a malformed path ID.
func pathIDValidationDetails(paramName string) []shared.ValidationErrorDetail {
	return []shared.ValidationErrorDetail{{
		Loc:  []string{"path", paramName},
		Msg:  "value is not a valid integer",
		Type: "type_error.integer",
	}}
}
