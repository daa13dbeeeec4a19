package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// HTTPStatusError is a non-2xx response from a collaborator, before it is
// mapped onto the domain error taxonomy.
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	return e.Status
}

func newHTTPStatusError(statusCode int, status string, body []byte) HTTPStatusError {
	var dest struct {
		Message *string `json:"message,omitempty"`
	}
	httpErr := HTTPStatusError{StatusCode: statusCode, Status: status}
	if err := json.Unmarshal(body, &dest); err == nil && dest.Message != nil {
		httpErr.Message = *dest.Message
	}
	return httpErr
}

// isRetryableError classifies failures for the read-path retry layer.
// Transport-level failures and upstream 5xx are worth another attempt; any
// 4xx is a definitive answer. Write paths never consult this: a submit
// consumes its version token on first use.
func isRetryableError(err error) bool {
	var statusErr HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return true
}
