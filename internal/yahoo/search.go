// Package yahoo provides Yahoo Finance headline sources and ticker validation.
package yahoo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"tickersentiment/internal/fetcher"
	"tickersentiment/internal/news"
)

// DefaultSearchURL is the Yahoo Finance search endpoint that returns news
// alongside quote matches.
const DefaultSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"

// SearchResponse represents the parts of the search API response we read
type SearchResponse struct {
	News []SearchNewsItem `json:"news"`
}

// SearchNewsItem is one news entry in a search response
type SearchNewsItem struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	Summary             string `json:"summary"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Type                string `json:"type"`
}

// SearchSource fetches headlines through the Yahoo Finance search API
type SearchSource struct {
	client *resty.Client
}

// NewSearchSource creates a search-backed news source
func NewSearchSource(baseURL, userAgent string, retries int) *SearchSource {
	if baseURL == "" {
		baseURL = DefaultSearchURL
	}
	return &SearchSource{
		client: fetcher.NewHTTPClient(baseURL, userAgent, retries),
	}
}

// Name implements news.Source
func (s *SearchSource) Name() string {
	return "yahoo"
}

// Headlines implements news.Source
func (s *SearchSource) Headlines(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
	var result SearchResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           ticker,
			"newsCount":   strconv.Itoa(count),
			"quotesCount": "0",
		}).
		SetResult(&result).
		Get("")

	if err != nil {
		if resp != nil && resp.IsSuccess() {
			return nil, fmt.Errorf("%w: decode search response for %s: %v", news.ErrMalformedResponse, ticker, err)
		}
		return nil, fetcher.ClassifyTransportError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	if ct := resp.Header().Get("Content-Type"); !strings.Contains(ct, "json") {
		return nil, fmt.Errorf("%w: unexpected content type %q", news.ErrMalformedResponse, ct)
	}

	headlines := make([]news.Headline, 0, len(result.News))
	for _, item := range result.News {
		h := news.Headline{
			Title:     item.Title,
			Link:      item.Link,
			Publisher: item.Publisher,
			Summary:   item.Summary,
		}
		if item.ProviderPublishTime > 0 {
			h.PublishedAt = time.Unix(item.ProviderPublishTime, 0)
		}
		headlines = append(headlines, h)
	}

	return headlines, nil
}
