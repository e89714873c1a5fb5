// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the PremBandhan matrimonial API.
//
// The primary abstraction is [ProfileSource], which decouples the service
// layer from the REST transport. The package ships an HTTP implementation
// ([NewHTTPProfileSource]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling — in particular [ErrUnauthorized] for 401, which the like
// flow must distinguish from every other failure.
package adapter
