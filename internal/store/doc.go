// Package store provides local persistence for the matchclient: an
// SQLite database holding the user's favorite profiles so liked matches
// remain browsable offline.
package store
