// Package service implements the matchclient business logic on top of the
// remote profile source, the local cache, the session, and the favorites
// store: browsing and searching profiles, the featured view with its warm
// cache, the like flow, and the background refresh job.
package service
