// Package session owns the client's authentication state: the bearer
// token, its persistence between runs, and change notifications for the
// components that care whether the user is signed in.
package session
