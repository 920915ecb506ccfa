package api

import "errors"

// Canonical request outcomes. Every failure returned by the gateway wraps
// exactly one of these, so callers can apply policy with errors.Is.
var (
	// ErrNetworkUnreachable: transport-level failure (DNS, refused connection).
	ErrNetworkUnreachable = errors.New("backend unreachable")

	// ErrNotFound: the backend answered 404 for the requested route.
	ErrNotFound = errors.New("endpoint not found")

	// ErrUnauthorized: the backend rejected the credentials (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServerError: 5xx, status 0, or any other non-2xx status.
	ErrServerError = errors.New("server error")

	// ErrInvalidResponseBody: a 2xx response whose body did not decode into
	// the expected shape.
	ErrInvalidResponseBody = errors.New("invalid response body")

	// ErrDemoModeDisabled: the call required auth while the session is in
	// demo mode; no network request was made.
	ErrDemoModeDisabled = errors.New("demo mode: backend calls are disabled")

	// ErrValidation: the request payload failed client-side validation and
	// never reached the network.
	ErrValidation = errors.New("validation error")
)

// BackendAbsent reports whether err belongs to the failure classes that,
// on the authentication endpoints, mean "backend not available" and justify
// degrading to demo mode. ErrUnauthorized is deliberately excluded: a real
// backend rejecting real credentials must not be masked as demo mode.
func BackendAbsent(err error) bool {
	return errors.Is(err, ErrNetworkUnreachable) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrServerError)
}
