package domain

import "errors"

// Sentinel errors for discovery operations. Callers match them with
// errors.Is; the handler layer maps them to HTTP status codes.
var (
	// ErrInvalidArgument marks caller mistakes, such as an empty search query.
	ErrInvalidArgument = errors.New("videos: invalid argument")

	// ErrNotFound is returned when the provider reports zero matching items.
	ErrNotFound = errors.New("videos: not found")

	// ErrUpstreamUnavailable wraps transport failures and non-success
	// responses from the provider.
	ErrUpstreamUnavailable = errors.New("videos: upstream unavailable")

	// ErrMalformedUpstream marks provider responses missing required
	// fields, like a snippet or a video id.
	ErrMalformedUpstream = errors.New("videos: malformed upstream data")
)
