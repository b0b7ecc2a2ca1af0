package yahoo

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"resty.dev/v3"

	"tickersentiment/internal/fetcher"
	"tickersentiment/internal/news"
)

// DefaultFeedURL is the Yahoo Finance per-ticker headline RSS feed
const DefaultFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"

// feedPublisher is used for items that carry no author
const feedPublisher = "Yahoo Finance"

// Yahoo answers unknown symbols with a single placeholder item
const feedNotFoundMarker = "RSS feed not found"

// FeedSource fetches headlines from the Yahoo Finance headline RSS feed
type FeedSource struct {
	client *resty.Client
	parser *gofeed.Parser
}

// NewFeedSource creates an RSS-backed news source
func NewFeedSource(baseURL, userAgent string, retries int) *FeedSource {
	if baseURL == "" {
		baseURL = DefaultFeedURL
	}
	return &FeedSource{
		client: fetcher.NewHTTPClient(baseURL, userAgent, retries),
		parser: gofeed.NewParser(),
	}
}

// Name implements news.Source
func (s *FeedSource) Name() string {
	return "yahoo_rss"
}

// Headlines implements news.Source
func (s *FeedSource) Headlines(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8").
		SetQueryParams(map[string]string{
			"s":      ticker,
			"region": "US",
			"lang":   "en-US",
		}).
		Get("")

	if err != nil {
		return nil, fetcher.ClassifyTransportError(err)
	}

	if !resp.IsSuccess() {
		return nil, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	feed, err := s.parser.ParseString(resp.String())
	if err != nil {
		return nil, fmt.Errorf("%w: parse feed for %s: %v", news.ErrMalformedResponse, ticker, err)
	}

	headlines := make([]news.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		if strings.Contains(item.Title, feedNotFoundMarker) {
			return nil, fmt.Errorf("%w: %s", news.ErrUnknownTicker, ticker)
		}

		h := news.Headline{
			Title:     item.Title,
			Link:      item.Link,
			Publisher: feedPublisher,
			Summary:   cleanHTML(item.Description),
		}
		if item.Author != nil && item.Author.Name != "" {
			h.Publisher = item.Author.Name
		}
		if item.PublishedParsed != nil {
			h.PublishedAt = *item.PublishedParsed
		}
		headlines = append(headlines, h)

		if len(headlines) == count {
			break
		}
	}

	return headlines, nil
}

// cleanHTML strips markup from an RSS description
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
