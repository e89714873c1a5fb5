// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/prembandhan/matchclient/internal/service"
)

func humanizeServiceError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrAuthRequired):
		return "Sign in to continue"
	case errors.Is(err, service.ErrAlreadyLiked):
		return "You have already liked this profile"
	case errors.Is(err, service.ErrLikeInFlight):
		return "Hold on, your like is still being sent"
	case errors.Is(err, service.ErrProfileNotFound):
		return "This profile is no longer available"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unreachable"
	}
	if errors.Is(err, service.ErrServiceUnavailable) {
		return "The profile service is temporarily unavailable, try again"
	}

	return err.Error()
}
