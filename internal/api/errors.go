package api

import "errors"

var (
	// ErrUnavailable covers transport-level failures: connection refused,
	// timeouts, DNS. Never retried automatically.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for any 401. By the time the caller sees
	// it the session has already been cleared via the unauthorized hook.
	ErrUnauthorized = errors.New("unauthorized")

	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)

// APIError carries a backend rejection verbatim so views can show the
// message to the user without rewording it.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "request rejected by server"
}
