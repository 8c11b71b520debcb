// Package admin is the HTTP client for the tenant admin API. It owns the
// failure taxonomy of every logical call: transient outcomes are retried with
// exponential backoff, entity-not-found outcomes return immediately, and both
// surface as typed errors for the discovery layer to route.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/de-tools/fabric-migration-atlas/pkg/models/api"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

type Settings struct {
	// BaseURL is the admin API root, e.g. https://api.powerbi.com/v1.0/myorg.
	BaseURL string
	// RetryMax is the number of retries after the initial attempt.
	RetryMax int
	// RetryWaitMin doubles on each retry up to RetryWaitMax.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// HTTPClient is the already-authenticated transport. Token acquisition
	// happens outside this package.
	HTTPClient *http.Client
}

func DefaultSettings(baseURL string) Settings {
	return Settings{
		BaseURL:      baseURL,
		RetryMax:     3,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 8 * time.Second,
	}
}

type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

func NewClient(settings Settings) (*Client, error) {
	if settings.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = settings.RetryMax
	rc.RetryWaitMin = settings.RetryWaitMin
	rc.RetryWaitMax = settings.RetryWaitMax
	rc.CheckRetry = checkRetry
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = logAttempt
	if settings.HTTPClient != nil {
		rc.HTTPClient = settings.HTTPClient
	}

	return &Client{
		http:    rc,
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
	}, nil
}

// checkRetry retries network failures, throttling and 5xx responses. A 404
// and every other 4xx are permanent for the resource and return immediately.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}

type attemptRecorderKey struct{}

type attemptRecorder struct {
	retries int
}

func logAttempt(_ retryablehttp.Logger, req *http.Request, retryNumber int) {
	if rec, ok := req.Context().Value(attemptRecorderKey{}).(*attemptRecorder); ok {
		rec.retries = retryNumber
	}
	if retryNumber > 0 {
		zerolog.Ctx(req.Context()).Warn().
			Str("path", req.URL.Path).
			Int("retry", retryNumber).
			Msg("retrying admin API call")
	}
}

// get issues one logical call and classifies the outcome. The returned retry
// count is the number of failed attempts before the final one.
func (c *Client) get(ctx context.Context, resource, rawURL string) ([]byte, int, error) {
	rec := &attemptRecorder{}
	ctx = context.WithValue(ctx, attemptRecorderKey{}, rec)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request for %s: %w", resource, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		status := 0
		if resp != nil {
			_ = resp.Body.Close()
			status = resp.StatusCode
		}
		return nil, rec.retries, &TransientError{
			Resource: resource,
			Status:   status,
			Attempts: rec.retries + 1,
			Err:      err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rec.retries, &TransientError{
			Resource: resource,
			Status:   resp.StatusCode,
			Attempts: rec.retries + 1,
			Err:      err,
		}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, rec.retries, nil
	case resp.StatusCode == http.StatusNotFound || isEntityNotFound(apiErrorCode(body)):
		return nil, rec.retries, &NotFoundError{Resource: resource, Code: apiErrorCode(body)}
	default:
		return nil, rec.retries, &TransientError{
			Resource: resource,
			Status:   resp.StatusCode,
			Attempts: rec.retries + 1,
		}
	}
}

func (c *Client) resourceURL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func apiErrorCode(body []byte) string {
	var parsed api.ErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Error.Code
}

func isEntityNotFound(code string) bool {
	return strings.Contains(code, "EntityNotFound") || code == "ItemNotFound"
}
