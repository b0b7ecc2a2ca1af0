package alphavantage

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

// DefaultBaseURL is the AlphaVantage query endpoint
const DefaultBaseURL = "https://www.alphavantage.co/query"

// timePublishedLayout is the format of FeedItem.TimePublished
const timePublishedLayout = "20060102T150405"

// NewsSentimentResponse represents the AlphaVantage NEWS_SENTIMENT response.
// On throttling or bad input the API answers 200 with Note, Information or
// Error Message set and no feed.
type NewsSentimentResponse struct {
	Items        string     `json:"items"`
	Feed         []FeedItem `json:"feed"`
	Note         string     `json:"Note"`
	Information  string     `json:"Information"`
	ErrorMessage string     `json:"Error Message"`
}

// FeedItem is one article in the NEWS_SENTIMENT feed
type FeedItem struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	TimePublished string   `json:"time_published"`
	Authors       []string `json:"authors"`
	Summary       string   `json:"summary"`
	Source        string   `json:"source"`
}

// NewsSource fetches ticker headlines from AlphaVantage
type NewsSource struct {
	apiKey string
	client *resty.Client
}

// NewNewsSource creates a new AlphaVantage news source
func NewNewsSource(apiKey, baseURL string, retries int) *NewsSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NewsSource{
		apiKey: apiKey,
		client: fetcher.NewHTTPClient(baseURL, "", retries),
	}
}

// Name implements news.Source
func (s *NewsSource) Name() string {
	return "alphavantage"
}

// Headlines implements news.Source
func (s *NewsSource) Headlines(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
	var result NewsSentimentResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apikey":   s.apiKey,
			"function": "NEWS_SENTIMENT",
			"tickers":  ticker,
			"limit":    strconv.Itoa(count),
			"sort":     "LATEST",
		}).
		SetResult(&result).
		Get("")

	if err != nil {
		if resp != nil && resp.IsSuccess() {
			return nil, fmt.Errorf("%w: decode news for %s: %v", news.ErrMalformedResponse, ticker, err)
		}
		return nil, fmt.Errorf("failed to fetch news for %s: %w", ticker, fetcher.ClassifyTransportError(err))
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	switch {
	case result.ErrorMessage != "":
		return nil, fmt.Errorf("%w: %s: %s", news.ErrUnknownTicker, ticker, result.ErrorMessage)
	case result.Note != "":
		return nil, fetcher.NewRateLimitError(resp.StatusCode(), result.Note)
	case result.Information != "" && result.Feed == nil:
		if strings.Contains(strings.ToLower(result.Information), "invalid inputs") {
			return nil, fmt.Errorf("%w: %s", news.ErrUnknownTicker, ticker)
		}
		return nil, fetcher.NewRateLimitError(resp.StatusCode(), result.Information)
	case result.Feed == nil:
		return nil, fmt.Errorf("%w: feed not found in response for %s", news.ErrMalformedResponse, ticker)
	}

	headlines := make([]news.Headline, 0, len(result.Feed))
	for _, item := range result.Feed {
		h := news.Headline{
			Title:     item.Title,
			Link:      item.URL,
			Publisher: item.Source,
			Summary:   item.Summary,
		}
		if t, err := time.Parse(timePublishedLayout, item.TimePublished); err == nil {
			h.PublishedAt = t
		}
		headlines = append(headlines, h)
	}

	return headlines, nil
}
