package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/velora-shop/storefront-backend/pkg/errors"
)

const mirrorBodyReadLimit int64 = 1024

// Mirror is the secondary-source HTTP client. Every request carries
// no-store cache directives: the chain must observe current data on every
// call, so stale responses are never acceptable.
type Mirror struct {
	httpClient *http.Client
	baseURL    string
}

// MirrorOption configures optional client behavior.
type MirrorOption func(*Mirror)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) MirrorOption {
	return func(m *Mirror) {
		if client != nil {
			m.httpClient = client
		}
	}
}

// WithTimeout bounds each mirror request so a slow network path cannot
// stall the whole chain.
func WithTimeout(timeout time.Duration) MirrorOption {
	return func(m *Mirror) {
		if timeout > 0 {
			m.httpClient.Timeout = timeout
		}
	}
}

// NewMirror builds the secondary-source client. The base URL must already be
// validated; an empty value is a configuration error and the caller is
// expected to skip the mirror stage instead of constructing a client.
func NewMirror(baseURL string, opts ...MirrorOption) (*Mirror, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeMisconfigured, "mirror base url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, pkgerrors.New(pkgerrors.CodeMisconfigured, fmt.Sprintf("mirror base url %q is not absolute", baseURL))
	}

	mirror := &Mirror{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(mirror)
		}
	}
	return mirror, nil
}

// getJSON is the single fetch primitive: one GET, decoded into out, or a
// typed error. Non-2xx responses are dependency errors carrying the status.
func (m *Mirror) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := m.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build mirror request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute mirror request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, mirrorBodyReadLimit))
		err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
		if resp.StatusCode == http.StatusNotFound {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "mirror record missing")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mirror request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode mirror response")
	}
	return nil
}
