package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx answers and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return NewAPIError(resp.StatusCode(), errorMessage(resp))
}

// NewAPIError builds the error for a status and the server's message.
func NewAPIError(status int, message string) *APIError {
	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
	}
	return &APIError{StatusCode: status, Message: message, kind: kind}
}

// errorMessage reads {"error": "..."} bodies and falls back to the raw text,
// then to the status text.
func errorMessage(resp *resty.Response) string {
	var body utils.ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if text := strings.TrimSpace(string(resp.Body())); text != "" {
		return text
	}

	return http.StatusText(resp.StatusCode())
}
