package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"resty.dev/v3"

	"tickersentiment/internal/ratelimit"
)

// PageFetcher fetches article pages with a bounded timeout, waiting on the
// per-host limiter before every request.
type PageFetcher struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
	timeout time.Duration
}

// NewPageFetcher creates a page fetcher. A nil limiter disables throttling.
func NewPageFetcher(userAgent string, timeout time.Duration, limiter *ratelimit.Limiter) *PageFetcher {
	if limiter == nil {
		limiter = ratelimit.Unlimited()
	}

	return &PageFetcher{
		client:  NewPageClient(userAgent, timeout),
		limiter: limiter,
		timeout: timeout,
	}
}

// Get implements Fetcher
func (f *PageFetcher) Get(ctx context.Context, rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, NewValidationError(fmt.Sprintf("invalid article url %q", rawURL))
	}

	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return nil, ClassifyTransportError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		Get(rawURL)

	if err != nil {
		return nil, ClassifyTransportError(err)
	}

	slog.Debug("fetched page",
		"url", rawURL,
		"status_code", resp.StatusCode(),
		"elapsed", time.Since(start))

	if !resp.IsSuccess() {
		return nil, ClassifyHTTPError(resp.StatusCode())
	}

	return &Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.String(),
	}, nil
}
