package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/msurana/gemvault/internal/common"
)

// APIError is a non-2xx response from the catalog service. It unwraps to one
// of the common sentinels so callers can use errors.Is without inspecting
// status codes.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("catalog: %s", http.StatusText(e.Status))
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return common.ErrorNotFound
	case e.Status == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return common.ErrorValidation
	default:
		return common.ErrorTransport
	}
}

// errorBody is the catalog's structured error payload.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeError turns a non-2xx response into an *APIError. The body is
// best-effort: a missing or malformed payload still yields a usable error.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body errorBody
	_ = json.Unmarshal(data, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}

	return &APIError{Status: resp.StatusCode, Message: msg}
}
