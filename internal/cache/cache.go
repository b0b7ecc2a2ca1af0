// Package cache keeps the most recent analysis for a session so repeated
// requests for the same ticker do not touch the network again.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"tickersentiment/internal/coordinator"
	"tickersentiment/internal/news"
)

var (
	// ErrEmptyTicker is returned when the ticker is blank after trimming
	ErrEmptyTicker = errors.New("ticker must not be empty")

	// ErrInvalidCount is returned when fewer than one article is requested
	ErrInvalidCount = errors.New("article count must be at least 1")
)

// Session is the caller-owned analysis state: the last ticker analyzed, the
// article count it was analyzed with and its result.
type Session struct {
	Ticker    string
	Count     int
	Result    *coordinator.Result
	Performed bool
}

// Analyzer computes a fresh result for a ticker
type Analyzer interface {
	Analyze(ctx context.Context, ticker string, count int, sink coordinator.ProgressSink) (*coordinator.Result, error)
}

// ResultCache serves a Session's stored result or computes a new one.
type ResultCache struct {
	analyzer Analyzer
	group    singleflight.Group

	mu      sync.Mutex
	session *Session

	// generation is bumped by Clear so that computations started before the
	// clear do not repopulate the session.
	generation uint64
}

// New creates a cache over session. A nil session starts empty.
func New(analyzer Analyzer, session *Session) *ResultCache {
	if session == nil {
		session = &Session{}
	}
	return &ResultCache{
		analyzer: analyzer,
		session:  session,
	}
}

// GetOrCompute returns the stored result when the session already holds a
// performed analysis of ticker. Otherwise it runs the analyzer, stores the
// result and marks the session performed.
//
// Concurrent calls for the same ticker share one computation, which runs
// with the ctx and sink of the caller that started it. A caller that joins
// an in-flight computation receives no progress updates, and cancelling its
// own ctx does not end its wait; cancelling the first caller's ctx ends it
// for everyone. Results of cancelled runs are returned but never stored.
func (c *ResultCache) GetOrCompute(ctx context.Context, ticker string, count int, sink coordinator.ProgressSink) (*coordinator.Result, error) {
	ticker = news.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, ErrEmptyTicker
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}

	c.mu.Lock()
	if c.session.Performed && c.session.Ticker == ticker && c.session.Result != nil {
		res := c.session.Result
		c.mu.Unlock()
		slog.Debug("cache hit", "ticker", ticker)
		return res, nil
	}
	gen := c.generation
	c.mu.Unlock()

	slog.Debug("cache miss", "ticker", ticker, "count", count)

	v, err, shared := c.group.Do(ticker, func() (any, error) {
		res, err := c.analyzer.Analyze(ctx, ticker, count, sink)
		if err != nil || res == nil || !res.Complete {
			return res, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation == gen {
			c.session.Ticker = ticker
			c.session.Count = count
			c.session.Result = res
			c.session.Performed = true
		}
		return res, nil
	})
	if shared {
		slog.Debug("joined in-flight analysis", "ticker", ticker)
	}

	res, _ := v.(*coordinator.Result)
	return res, err
}

// Clear forgets the stored result. An analysis still running when Clear is
// called will not be stored.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.session.Ticker = ""
	c.session.Result = nil
	c.session.Performed = false
}

// Snapshot returns a copy of the current session.
func (c *ResultCache) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.session
}
