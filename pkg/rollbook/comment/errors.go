package comment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredentials indicates no API key is configured or the key was rejected.
	ErrMissingCredentials = errors.New("missing API credentials")
	// ErrRateLimited indicates the backend quota is exhausted.
	ErrRateLimited = errors.New("rate limited")
	// ErrConnectivity indicates the backend could not be reached or failed.
	ErrConnectivity = errors.New("backend connectivity failure")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
	// Kind is one of the sentinel errors above.
	Kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, truncate(e.Body, 300))
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// newAPIError classifies a failed response.
func newAPIError(status int, body string) *APIError {
	kind := ErrConnectivity
	switch {
	case status == 401 || status == 403:
		kind = ErrMissingCredentials
	case status == 429 || containsFold(body, "RESOURCE_EXHAUSTED") || containsFold(body, "quota"):
		kind = ErrRateLimited
	}
	return &APIError{StatusCode: status, Body: body, Kind: kind}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
