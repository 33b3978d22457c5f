package formrules

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/formrules/pkg/fieldvalue"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Error codes used by Guard responses.
const (
	CodeValidationError = "validation_error"
	CodeBadRequest      = "bad_request"
	CodeInternalError   = "internal_error"
)

// WriteJSON writes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body JSONResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// ValidationErrorResponse is the 422 body for a rejected submission. The
// message is the alert summary; details group the messages by field.
func ValidationErrorResponse(summary string, fe FieldErrors) JSONResponse {
	detail := &ErrorDetail{
		Code:    CodeValidationError,
		Message: summary,
	}
	if len(fe) > 0 {
		detail.Details = map[string][]string(fe)
	}
	return JSONResponse{Error: detail}
}

// errorResponse converts a Guard failure into a status and response body.
// Binding failures are client errors; anything else is internal.
func errorResponse(err error) (int, JSONResponse) {
	switch {
	case errors.Is(err, fieldvalue.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, errorBody(CodeBadRequest, err.Error())
	case errors.Is(err, ErrBindFailed):
		return http.StatusBadRequest, errorBody(CodeBadRequest, err.Error())
	default:
		return http.StatusInternalServerError, errorBody(CodeInternalError, http.StatusText(http.StatusInternalServerError))
	}
}

func errorBody(code, message string) JSONResponse {
	return JSONResponse{Error: &ErrorDetail{Code: code, Message: message}}
}
