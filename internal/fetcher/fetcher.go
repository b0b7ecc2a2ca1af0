package fetcher

import "context"

// Fetcher is the HTTP fetch capability used by the article extractor.
// Implementations return a *FetchError for every failure: transport errors,
// timeouts and non-success status codes alike.
type Fetcher interface {
	// Get retrieves the page at url. A nil error guarantees a 2xx response.
	Get(ctx context.Context, url string) (*Page, error)
}
