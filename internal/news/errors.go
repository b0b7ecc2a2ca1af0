package news

import (
	"context"
	"errors"
	"fmt"

	"tickersentiment/internal/fetcher"
)

var (
	// ErrUnknownTicker indicates the provider does not recognise the symbol
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrMalformedResponse indicates the provider answered with an unusable payload
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Reason categorises why a news query failed.
type Reason string

const (
	ReasonNetwork       Reason = "network"
	ReasonTimeout       Reason = "timeout"
	ReasonRateLimit     Reason = "rate_limit"
	ReasonMalformed     Reason = "malformed"
	ReasonUnknownTicker Reason = "unknown_ticker"
	ReasonProvider      Reason = "provider"
)

// SourceError is the recoverable error surfaced when a news query fails.
// The caller gets it alongside an empty headline list, never instead of one.
type SourceError struct {
	Provider string
	Ticker   string
	Reason   Reason
	Cause    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("news source %s failed for %s (%s): %v", e.Provider, e.Ticker, e.Reason, e.Cause)
	}
	return fmt.Sprintf("news source %s failed for %s (%s)", e.Provider, e.Ticker, e.Reason)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *SourceError) Unwrap() error {
	return e.Cause
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, ErrUnknownTicker):
		return ReasonUnknownTicker
	case errors.Is(err, ErrMalformedResponse):
		return ReasonMalformed
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	}

	switch fetcher.TypeOf(err) {
	case fetcher.ErrorTypeNetwork:
		return ReasonNetwork
	case fetcher.ErrorTypeTimeout:
		return ReasonTimeout
	case fetcher.ErrorTypeRateLimit:
		return ReasonRateLimit
	case fetcher.ErrorTypeParse, fetcher.ErrorTypeValidation:
		return ReasonMalformed
	}

	return ReasonProvider
}
