package yahoo

import (
	"context"
	"fmt"
	"log/slog"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"tickersentiment/internal/news"
)

// QuoteValidator checks that a ticker has a quote before news is requested.
type QuoteValidator struct {
	get func(symbol string) (*finance.Quote, error)
}

// NewQuoteValidator creates a validator backed by the finance-go quote API
func NewQuoteValidator() *QuoteValidator {
	return &QuoteValidator{get: quote.Get}
}

type quoteResult struct {
	quote *finance.Quote
	err   error
}

// Validate implements news.Validator. Only a confirmed missing quote rejects
// the ticker; a failed lookup is logged and the ticker is let through.
//
// finance-go takes no context, so the lookup runs in its own goroutine and
// Validate returns ctx.Err() as soon as ctx is done. The abandoned lookup
// finishes in the background under finance-go's client timeout.
func (v *QuoteValidator) Validate(ctx context.Context, ticker string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan quoteResult, 1)
	go func() {
		q, err := v.get(ticker)
		done <- quoteResult{quote: q, err: err}
	}()

	var res quoteResult
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-done:
	}

	q, err := res.quote, res.err
	if err != nil {
		slog.Debug("quote lookup failed, skipping ticker validation", "ticker", ticker, "error", err)
		return nil
	}

	if q == nil || q.Symbol == "" {
		return fmt.Errorf("%w: %s", news.ErrUnknownTicker, ticker)
	}

	return nil
}
