package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tickersentiment/internal/article"
	"tickersentiment/internal/coordinator"
	"tickersentiment/internal/news"
	"tickersentiment/internal/testutil"
)

func headlines(ticker string) []news.Headline {
	return []news.Headline{
		{Title: ticker + " rallies", Link: "https://a.example/1"},
		{Title: ticker + " dips", Link: "https://b.example/2"},
		{Title: ticker + " flat"},
	}
}

func newCoordinator(src news.Source) *coordinator.Coordinator {
	ex := testutil.NewMockExtractor(map[string]string{"https://a.example/1": "strong results"})
	return coordinator.New(src, article.NewProcessor(ex, nil, 0), nil)
}

// fakeAnalyzer counts calls and returns a canned result.
type fakeAnalyzer struct {
	calls   atomic.Int32
	fn      func(ctx context.Context, ticker string) (*coordinator.Result, error)
	release chan struct{}
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, ticker string, count int, sink coordinator.ProgressSink) (*coordinator.Result, error) {
	f.calls.Add(1)
	if sink != nil {
		sink.Status("analyzing " + ticker)
	}
	if f.release != nil {
		<-f.release
	}
	if f.fn != nil {
		return f.fn(ctx, ticker)
	}
	return &coordinator.Result{Ticker: ticker, Complete: true}, nil
}

func TestGetOrCompute_Idempotent(t *testing.T) {
	src := &testutil.MockSource{
		HeadlinesFunc: func(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
			return headlines(ticker), nil
		},
	}
	session := &Session{}
	c := New(newCoordinator(src), session)

	first, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}
	second, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}

	if src.Calls() != 1 {
		t.Errorf("news source called %d times, want 1", src.Calls())
	}
	if first != second {
		t.Error("second call returned a different result")
	}
	if !session.Performed || session.Ticker != "AAPL" || session.Result != first || session.Count != 3 {
		t.Errorf("session = %+v", session)
	}
}

func TestGetOrCompute_NormalizesTicker(t *testing.T) {
	a := &fakeAnalyzer{}
	c := New(a, nil)

	if _, err := c.GetOrCompute(context.Background(), " aapl ", 3, nil); err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}
	if _, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil); err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}
	if got := a.calls.Load(); got != 1 {
		t.Errorf("analyzer called %d times, want 1", got)
	}
}

func TestGetOrCompute_CountChangeKeepsEntry(t *testing.T) {
	a := &fakeAnalyzer{}
	c := New(a, nil)

	c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	c.GetOrCompute(context.Background(), "AAPL", 5, nil)

	if got := a.calls.Load(); got != 1 {
		t.Errorf("analyzer called %d times, want 1", got)
	}
	if got := c.Snapshot().Count; got != 3 {
		t.Errorf("session count = %d, want 3", got)
	}
}

func TestGetOrCompute_TickerChangeMisses(t *testing.T) {
	a := &fakeAnalyzer{}
	c := New(a, nil)

	c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	res, err := c.GetOrCompute(context.Background(), "MSFT", 3, nil)
	if err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}

	if got := a.calls.Load(); got != 2 {
		t.Errorf("analyzer called %d times, want 2", got)
	}
	if res.Ticker != "MSFT" || c.Snapshot().Ticker != "MSFT" {
		t.Errorf("result ticker = %q, session ticker = %q", res.Ticker, c.Snapshot().Ticker)
	}

	c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if got := a.calls.Load(); got != 3 {
		t.Errorf("analyzer called %d times after switching back, want 3", got)
	}
}

func TestClear(t *testing.T) {
	a := &fakeAnalyzer{}
	c := New(a, nil)

	c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	c.Clear()

	snap := c.Snapshot()
	if snap.Performed || snap.Result != nil || snap.Ticker != "" {
		t.Errorf("session after Clear = %+v", snap)
	}

	c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if got := a.calls.Load(); got != 2 {
		t.Errorf("analyzer called %d times, want 2", got)
	}
}

func TestClear_DuringComputation(t *testing.T) {
	a := &fakeAnalyzer{release: make(chan struct{})}
	c := New(a, nil)

	done := make(chan struct{})
	go func() {
		c.GetOrCompute(context.Background(), "AAPL", 3, nil)
		close(done)
	}()

	for a.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	c.Clear()
	close(a.release)
	<-done

	if c.Snapshot().Performed {
		t.Error("result computed before Clear was stored")
	}
}

func TestGetOrCompute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		ticker string
		count  int
		want   error
	}{
		{"empty ticker", "", 3, ErrEmptyTicker},
		{"blank ticker", "   ", 3, ErrEmptyTicker},
		{"zero count", "AAPL", 0, ErrInvalidCount},
		{"negative count", "AAPL", -1, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAnalyzer{}
			_, err := New(a, nil).GetOrCompute(context.Background(), tt.ticker, tt.count, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if a.calls.Load() != 0 {
				t.Error("analyzer called for invalid input")
			}
		})
	}
}

func TestGetOrCompute_PartialNotStored(t *testing.T) {
	a := &fakeAnalyzer{
		fn: func(ctx context.Context, ticker string) (*coordinator.Result, error) {
			return &coordinator.Result{Ticker: ticker, Complete: false}, context.Canceled
		},
	}
	c := New(a, nil)

	res, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if res == nil || res.Complete {
		t.Errorf("result = %+v, want partial result", res)
	}
	if c.Snapshot().Performed {
		t.Error("partial result was stored")
	}
}

func TestGetOrCompute_SharesInFlight(t *testing.T) {
	a := &fakeAnalyzer{release: make(chan struct{})}
	c := New(a, nil)

	var wg sync.WaitGroup
	results := make([]*coordinator.Result, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrCompute(context.Background(), "AAPL", 3, nil)
		}(i)
	}

	// Give every goroutine time to join the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(a.release)
	wg.Wait()

	if got := a.calls.Load(); got != 1 {
		t.Errorf("analyzer called %d times, want 1", got)
	}
	for i, r := range results {
		if r == nil || r != results[0] {
			t.Errorf("results[%d] = %p, want shared %p", i, r, results[0])
		}
	}
}

func TestGetOrCompute_JoinedCallerUsesFirstSink(t *testing.T) {
	a := &fakeAnalyzer{release: make(chan struct{})}
	c := New(a, nil)

	first := &testutil.RecordingSink{}
	joined := &testutil.RecordingSink{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.GetOrCompute(context.Background(), "AAPL", 3, first)
	}()
	for a.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	go func() {
		defer wg.Done()
		c.GetOrCompute(context.Background(), "AAPL", 3, joined)
	}()

	time.Sleep(50 * time.Millisecond)
	close(a.release)
	wg.Wait()

	if got := a.calls.Load(); got != 1 {
		t.Errorf("analyzer called %d times, want 1", got)
	}
	if got := first.Statuses(); len(got) != 1 {
		t.Errorf("first caller statuses = %v, want one update", got)
	}
	if got := joined.Statuses(); len(got) != 0 {
		t.Errorf("joined caller statuses = %v, want none", got)
	}
}
