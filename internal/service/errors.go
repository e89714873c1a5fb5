package service

import "errors"

var (
	// ErrAuthRequired means the operation needs a live bearer token: none
	// is present, the current one has expired, or the server rejected it.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyLiked means the profile already carries the viewer's like.
	ErrAlreadyLiked = errors.New("profile already liked")

	// ErrLikeInFlight means a like request for the same profile has not
	// completed yet.
	ErrLikeInFlight = errors.New("like request already in flight")

	// ErrSuperseded means a newer browse request started before this one
	// finished; its result was discarded.
	ErrSuperseded = errors.New("browse request superseded")

	// ErrProfileNotFound means the requested profile does not exist on the
	// server.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrServiceUnavailable means the remote API could not be reached or
	// answered with a server-side failure. Retryable.
	ErrServiceUnavailable = errors.New("profile service unavailable")
)
