package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the raw token from an "Authorization: Bearer x"
// style value. A bare token without the scheme prefix is returned unchanged,
// so pasted tokens work either way. Returns an error for an empty value.
func ParseBearerToken(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("empty authorization value")
	}

	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		return parts[0], nil
	case 2:
		if !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", errors.New("invalid authorization header")
		}
		return parts[1], nil
	default:
		return "", errors.New("invalid authorization header")
	}
}

// TokenExpired reports whether a JWT carries an exp claim in the past at the
// given moment. The signature is NOT verified — the server remains the
// authority — this is only a client-side peek that saves a doomed request
// when the stored token has visibly lapsed.
//
// A token that cannot be parsed, or that carries no exp claim, is reported
// as not expired: the server gets to decide.
func TokenExpired(tokenString string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Time.Before(now)
}
