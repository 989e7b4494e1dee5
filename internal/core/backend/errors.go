package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const nonJSONErrorMessage = "Server returned a non-JSON error response."

// APIError is the single normalized failure shape for every backend call:
// transport failures, non-2xx statuses, and malformed bodies all end up here
// so callers only ever surface one message string.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError extracts the backend's error message from a non-2xx response,
// falling back to a generic message when the body is not JSON or carries no
// error field.
func newAPIError(resp *http.Response) *APIError {
	msg := ""
	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) != nil {
			msg = nonJSONErrorMessage
		} else {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
