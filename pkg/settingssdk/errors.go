package settingssdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned by SDKClient for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("settings api: %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the API. By the time the
// caller sees it the Gateway has already cleared the session.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// parseErrorResponse turns a non-2xx response body into an *APIError. Bodies
// that are not an envelope fall back to the status text.
func parseErrorResponse(status int, body []byte) error {
	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: status, Message: env.Message}
	}
	return &APIError{
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status)),
	}
}
