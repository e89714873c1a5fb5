package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/prembandhan/matchclient/internal/config"
	"github.com/prembandhan/matchclient/internal/filter"
	"github.com/prembandhan/matchclient/internal/logger"
	"github.com/prembandhan/matchclient/internal/utils"
	"github.com/prembandhan/matchclient/models"
)

type httpProfileSource struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPProfileSource constructs an HTTP/REST implementation of
// [ProfileSource]. It normalises and validates the base URL from
// adapterCfg.APIAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPProfileSource(adapterCfg config.ClientAdapter, logger *logger.Logger) (ProfileSource, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpProfileSource{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ProfileSource]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpProfileSource) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ProfileSource]. It returns the bearer token currently
// held by the source, or an empty string if none has been set.
func (h *httpProfileSource) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// PublicProfiles implements [ProfileSource]. It GETs /public/profiles and
// decodes whichever records container the server populated.
func (h *httpProfileSource) PublicProfiles(ctx context.Context) ([]models.Profile, error) {
	return h.fetchList(ctx, "/public/profiles", nil)
}

// FeaturedProfiles implements [ProfileSource]. It GETs /public/featured.
func (h *httpProfileSource) FeaturedProfiles(ctx context.Context) ([]models.Profile, error) {
	return h.fetchList(ctx, "/public/featured", nil)
}

// SearchProfiles implements [ProfileSource]. It GETs /profiles/search with
// the codec serialization of f minus the search flag. The bearer token is
// required by the server; a rejected request maps to [ErrUnauthorized].
func (h *httpProfileSource) SearchProfiles(ctx context.Context, f models.FilterState) ([]models.Profile, error) {
	return h.fetchList(ctx, "/profiles/search", filter.SearchParams(f))
}

func (h *httpProfileSource) fetchList(ctx context.Context, path string, params url.Values) ([]models.Profile, error) {
	req := h.request(ctx)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.ProfileListResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedResponse, path, err)
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s reported success=false", ErrMalformedResponse, path)
	}

	return body.Records(), nil
}

// GetProfile implements [ProfileSource]. It GETs /profiles/{id}; the full
// record sits under the response's "user" field.
func (h *httpProfileSource) GetProfile(ctx context.Context, id int64) (models.Profile, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/profiles/%d", id))
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile %d: %w", id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var body models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Profile{}, fmt.Errorf("%w: decode profile %d: %v", ErrMalformedResponse, id, err)
	}
	if !body.Success || body.User == nil {
		return models.Profile{}, fmt.Errorf("%w: profile %d missing from response", ErrMalformedResponse, id)
	}

	return *body.User, nil
}

// LikeProfile implements [ProfileSource]. It POSTs /profiles/{id}/like; the
// server answers with a bare status code, so only the error mapping matters.
func (h *httpProfileSource) LikeProfile(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		Post(fmt.Sprintf("/profiles/%d/like", id))
	if err != nil {
		return fmt.Errorf("like profile %d: %w", id, err)
	}

	return mapHTTPError(resp)
}

func (h *httpProfileSource) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
