package testutil

import (
	"context"
	"sync"

	"tickersentiment/internal/extract"
	"tickersentiment/internal/fetcher"
	"tickersentiment/internal/news"
)

// MockSource is a mock implementation of the news.Source interface for testing
type MockSource struct {
	HeadlinesFunc func(ctx context.Context, ticker string, count int) ([]news.Headline, error)
	NameFunc      func() string

	mu    sync.Mutex
	calls int
}

// Headlines implements the news.Source interface
func (m *MockSource) Headlines(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.HeadlinesFunc != nil {
		return m.HeadlinesFunc(ctx, ticker, count)
	}
	return nil, nil
}

// Name implements the news.Source interface
func (m *MockSource) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock"
}

// Calls returns how many times Headlines was invoked
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// NewMockSource creates a simple mock source with predefined headlines
func NewMockSource(headlines []news.Headline, err error) *MockSource {
	return &MockSource{
		HeadlinesFunc: func(ctx context.Context, ticker string, count int) ([]news.Headline, error) {
			return headlines, err
		},
	}
}

// MockExtractor is a mock article text extractor
type MockExtractor struct {
	ExtractFunc func(ctx context.Context, url string) extract.Extraction

	mu   sync.Mutex
	urls []string
}

// Extract records url and delegates to ExtractFunc
func (m *MockExtractor) Extract(ctx context.Context, url string) extract.Extraction {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, url)
	}
	return extract.Extraction{Err: fetcher.NewServerError(500)}
}

// URLs returns the urls passed to Extract, in call order
func (m *MockExtractor) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// NewMockExtractor creates an extractor serving fixed text per url. Unknown
// urls fail with a server error.
func NewMockExtractor(pages map[string]string) *MockExtractor {
	return &MockExtractor{
		ExtractFunc: func(ctx context.Context, url string) extract.Extraction {
			if text, ok := pages[url]; ok {
				return extract.Extraction{Text: text}
			}
			return extract.Extraction{Err: fetcher.NewServerError(500)}
		},
	}
}

// MockModel is a mock sentiment model
type MockModel struct {
	AnalyzeFunc func(text string) (float64, float64)
}

// Analyze implements sentiment.Model
func (m *MockModel) Analyze(text string) (float64, float64) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(text)
	}
	return 0, 0
}

// MockFetcher is a mock implementation of the fetcher.Fetcher interface
type MockFetcher struct {
	GetFunc func(ctx context.Context, url string) (*fetcher.Page, error)
}

// Get implements the fetcher.Fetcher interface
func (m *MockFetcher) Get(ctx context.Context, url string) (*fetcher.Page, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, url)
	}
	return nil, fetcher.NewNetworkError(nil)
}

// RecordingSink captures progress and status updates
type RecordingSink struct {
	mu       sync.Mutex
	progress []float64
	statuses []string
}

// Progress records a progress fraction
func (s *RecordingSink) Progress(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = append(s.progress, p)
}

// Status records a status message
func (s *RecordingSink) Status(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, msg)
}

// ProgressValues returns every progress fraction received
func (s *RecordingSink) ProgressValues() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.progress...)
}

// Statuses returns every status message received
func (s *RecordingSink) Statuses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.statuses...)
}
