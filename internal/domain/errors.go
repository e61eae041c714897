package domain

import "errors"

// Internal failure taxonomy. Services log and count these, then collapse
// them to an empty result set at their boundary: callers cannot tell an
// auth failure from a genuine zero-result search.
var (
	// ErrAuth means the OAuth token exchange failed.
	ErrAuth = errors.New("token exchange failed")

	// ErrUpstream means a data call got a non-2xx status or a transport error.
	ErrUpstream = errors.New("upstream request failed")

	// ErrMalformedPayload means a response decoded but did not match the
	// expected schema. The whole batch for that call is discarded.
	ErrMalformedPayload = errors.New("malformed provider payload")

	// ErrNoEvents is the only failure surfaced to callers, produced when
	// both the primary and the fallback events source come back empty.
	ErrNoEvents = errors.New("No events found locally or globally.")
)
