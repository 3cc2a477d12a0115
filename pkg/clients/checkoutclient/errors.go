package checkoutclient

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinels callers can branch on with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRejected     = errors.New("request rejected by server")
)

// APIError is a non-2xx response. Message carries the server's `error` field
// verbatim when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// ServerMessage extracts the server-reported error text from err, falling
// back to the supplied generic message. Transport failures and responses
// without an `error` field both fall back.
func ServerMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	// The backend reports failures as {"error": "..."}; anything else is
	// left as a bare status.
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.Mark(apiErr, ErrUnauthorized)
	case http.StatusForbidden:
		return errors.Mark(apiErr, ErrForbidden)
	case http.StatusNotFound:
		return errors.Mark(apiErr, ErrNotFound)
	default:
		return errors.Mark(apiErr, ErrRejected)
	}
}
