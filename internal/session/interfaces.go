package session

// [Session] tracks the current bearer token and tells interested
// components when it changes.
type Session interface {
	// Token returns the current bearer token, or "" when signed out.
	Token() string

	// SetToken stores a new token, persists it, and notifies listeners.
	// An empty token is equivalent to Clear.
	SetToken(token string) error

	// Clear forgets the token, removes the persisted copy, and notifies
	// listeners.
	Clear() error

	// Authenticated reports whether a token is present.
	Authenticated() bool

	// Expired reports whether the current token carries an expiry claim
	// that has already passed. Tokens without a readable expiry are
	// treated as live.
	Expired() bool

	// Subscribe registers a listener invoked with the new token after
	// every change. Listeners are called synchronously in registration
	// order.
	Subscribe(listener func(token string))
}
