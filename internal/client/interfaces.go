// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract the entrypoint drives: wire everything,
// run until the user quits or a fatal error occurs.
type Client interface {
	// Run starts the interactive client and blocks until exit. A normal
	// user-initiated quit returns nil.
	Run() error
}
