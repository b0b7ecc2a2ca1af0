package news

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Fetch queries src and never fails hard: on any provider error it returns an
// empty list together with a *SourceError for the caller to surface.
//
// Successful results are cleaned up before they are returned: items without a
// title are dropped, a missing publisher becomes UnknownPublisher, items are
// ordered newest-first when every item has a timestamp, and the list is cut
// to count.
func Fetch(ctx context.Context, src Source, ticker string, count int) (headlines []Headline, srcErr *SourceError) {
	ticker = NormalizeTicker(ticker)
	if count < 1 {
		count = 1
	}

	defer func() {
		if r := recover(); r != nil {
			headlines = []Headline{}
			srcErr = &SourceError{
				Provider: src.Name(),
				Ticker:   ticker,
				Reason:   ReasonProvider,
				Cause:    fmt.Errorf("panic: %v", r),
			}
			slog.Error("news source panicked", "provider", src.Name(), "ticker", ticker, "panic", r)
		}
	}()

	raw, err := src.Headlines(ctx, ticker, count)
	if err != nil {
		srcErr = &SourceError{
			Provider: src.Name(),
			Ticker:   ticker,
			Reason:   classify(err),
			Cause:    err,
		}
		slog.Warn("news query failed",
			"provider", src.Name(),
			"ticker", ticker,
			"reason", srcErr.Reason,
			"error", err)
		return []Headline{}, srcErr
	}

	headlines = clean(raw)
	if len(headlines) > count {
		headlines = headlines[:count]
	}

	slog.Debug("news query complete",
		"provider", src.Name(),
		"ticker", ticker,
		"received", len(raw),
		"kept", len(headlines))

	return headlines, nil
}

func clean(raw []Headline) []Headline {
	out := make([]Headline, 0, len(raw))
	allTimed := true

	for _, h := range raw {
		h.Title = strings.TrimSpace(h.Title)
		if h.Title == "" {
			continue
		}
		h.Link = strings.TrimSpace(h.Link)
		h.Summary = strings.TrimSpace(h.Summary)
		h.Publisher = strings.TrimSpace(h.Publisher)
		if h.Publisher == "" {
			h.Publisher = UnknownPublisher
		}
		if !h.HasTimestamp() {
			allTimed = false
		}
		out = append(out, h)
	}

	// Only reorder when every item can be compared; otherwise keep the
	// provider's ordering.
	if allTimed {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		})
	}

	return out
}
