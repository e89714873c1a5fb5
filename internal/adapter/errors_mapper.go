package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := errorReason(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, reason)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		// serverless hosting surfaces cold starts and overload as 502/503
		return fmt.Errorf("%w: %s", ErrBadGateway, reason)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
	}
}

// errorReason extracts the human-readable cause from an error response. The
// API reports failures as {"success": false, "message": "..."} JSON bodies;
// anything else falls back to the raw body or the status text.
func errorReason(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
