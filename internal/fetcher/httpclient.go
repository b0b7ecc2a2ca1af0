package fetcher

import (
	"log/slog"
	"time"

	"resty.dev/v3"
)

const (
	// Default retry configuration for provider APIs
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 10 * time.Second

	// DefaultUserAgent is a realistic desktop browser user agent. Many news
	// sites refuse requests from obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// NewHTTPClient creates a client for JSON/RSS provider APIs with retry logic
// and exponential backoff. retries of 0 disables retrying.
func NewHTTPClient(baseURL, userAgent string, retries int) *resty.Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if retries > 0 {
		client.
			SetRetryCount(retries).
			SetRetryWaitTime(defaultRetryWaitTime).
			SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
			AddRetryConditions(retryCondition).
			AddRetryHooks(retryHook)
	}

	return client
}

// NewPageClient creates a client for fetching third-party article pages.
// Pages are never retried: a failed article is a tolerated outcome and
// hammering a site that just refused us is what the throttle exists to avoid.
func NewPageClient(userAgent string, timeout time.Duration) *resty.Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	switch {
	case r.StatusCode() >= 500:
		return true
	case r.StatusCode() == 429:
		return true
	case r.StatusCode() == 408:
		return true
	}

	return false
}

// retryHook logs retry attempts for observability
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying request due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying request due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
