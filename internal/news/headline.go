// Package news defines the headline model and the fail-soft boundary around
// news providers.
package news

import (
	"context"
	"strings"
	"time"
)

// UnknownPublisher is used when a provider does not name the publisher.
const UnknownPublisher = "Unknown"

// Headline is one news item's metadata as reported by a provider.
type Headline struct {
	Title     string
	Link      string
	Publisher string

	// Summary is optional; providers vary.
	Summary string

	// PublishedAt is the zero time when the provider gave no timestamp.
	PublishedAt time.Time
}

// HasTimestamp reports whether the provider supplied a publish time.
func (h Headline) HasTimestamp() bool {
	return !h.PublishedAt.IsZero()
}

// Source queries a news provider for recent headlines about a ticker.
type Source interface {
	// Headlines returns at most count items. Implementations may return
	// errors freely; Fetch converts them into a SourceError.
	Headlines(ctx context.Context, ticker string, count int) ([]Headline, error)

	// Name identifies the provider in logs and errors.
	Name() string
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
