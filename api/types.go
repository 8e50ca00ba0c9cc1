package api

import (
	"strconv"

	"github.com/go-chi/chi/v5"
	"net/http"

	"github.com/devfolio/backend/errs"
)

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// messageResponse is the body of simple success replies
type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successMessage(message string) messageResponse {
	return messageResponse{Status: "success", Message: message}
}

// parseIDParam extracts an integer identifier from the URL
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// parseQueryID extracts an optional integer identifier from the query string.
// Returns (0, false, nil) when the parameter is absent.
func parseQueryID(r *http.Request, name string) (uint, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), true, nil
}
