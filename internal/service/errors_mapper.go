// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/prembandhan/matchclient/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return ErrAuthRequired

	case errors.Is(err, adapter.ErrNotFound):
		return ErrProfileNotFound

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	// connection refused, DNS failure, timeout and friends
	return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
}
