package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"tickersentiment/internal/article"
	"tickersentiment/internal/cache"
	"tickersentiment/internal/config"
)

// newsSite serves a Yahoo-style search API, a headline RSS feed, an
// AlphaVantage-style news endpoint and the article pages they link to.
type newsSite struct {
	server      *httptest.Server
	searchHits  atomic.Int32
	pageHits    atomic.Int32
	emptyTicker string
}

func newNewsSite(t *testing.T) *newsSite {
	t.Helper()
	site := &newsSite{emptyTicker: "ZZZZ"}

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		site.searchHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == site.emptyTicker {
			w.Write([]byte(`{"news": []}`))
			return
		}
		base := site.server.URL
		fmt.Fprintf(w, `{"news": [
			{"title": "Apple soars on record iPhone sales", "publisher": "Reuters", "link": "%[1]s/news/1", "providerPublishTime": 1705329000},
			{"title": "Apple faces lawsuit", "publisher": "Bloomberg", "link": "%[1]s/news/2", "providerPublishTime": 1705325400},
			{"title": "Apple holds annual meeting", "link": "%[1]s/news/3", "providerPublishTime": 1705321800}
		]}`, base)
	})
	mux.HandleFunc("/rss", func(w http.ResponseWriter, r *http.Request) {
		site.searchHits.Add(1)
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Yahoo! Finance: %[2]s News</title>
<item><title>Apple soars on record iPhone sales</title><link>%[1]s/news/1</link><description>Strong quarter.</description><pubDate>Mon, 15 Jan 2024 14:30:00 +0000</pubDate></item>
<item><title>Apple faces lawsuit</title><link>%[1]s/news/2</link><pubDate>Mon, 15 Jan 2024 13:30:00 +0000</pubDate></item>
</channel></rss>`, site.server.URL, r.URL.Query().Get("s"))
	})
	mux.HandleFunc("/av", func(w http.ResponseWriter, r *http.Request) {
		site.searchHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"items": "1", "feed": [
			{"title": "Apple soars on record iPhone sales", "url": "%s/news/1", "time_published": "20240115T143000", "source": "Benzinga", "summary": ""}
		]}`, site.server.URL)
	})
	mux.HandleFunc("/news/1", func(w http.ResponseWriter, r *http.Request) {
		site.pageHits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><nav><p>Markets</p></nav>
			<p>Apple delivered excellent results with strong growth.</p>
			<p>Oops, something went wrong Unlock stock picks and a broker-level newsfeed that powers Wall</p>
			<p>Analysts called it a great quarter.</p>
			<footer><p>Copyright</p></footer></body></html>`))
	})
	mux.HandleFunc("/news/2", func(w http.ResponseWriter, r *http.Request) {
		site.pageHits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>The lawsuit is a terrible disaster for the company.</p></body></html>`))
	})
	mux.HandleFunc("/news/3", func(w http.ResponseWriter, r *http.Request) {
		site.pageHits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	site.server = httptest.NewServer(mux)
	t.Cleanup(site.server.Close)
	return site
}

// testConfig is a fast configuration pointing every provider at the site
func (s *newsSite) testConfig() *config.Config {
	return &config.Config{
		NewsProvider:        config.ProviderYahoo,
		YahooSearchURL:      s.server.URL + "/search",
		YahooRSSURL:         s.server.URL + "/rss",
		AlphavantageAPIKey:  "test_key",
		AlphavantageBaseURL: s.server.URL + "/av",
		ArticleCount:        3,
		Concurrency:         1,
		FetchTimeout:        5 * time.Second,
		NewsTimeout:         5 * time.Second,
		LogLevel:            "error",
	}
}

// setEnv points the CLI's configuration at the site
func (s *newsSite) setEnv(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"NEWS_PROVIDER":         config.ProviderYahoo,
		"YAHOO_SEARCH_URL":      s.server.URL + "/search",
		"YAHOO_RSS_URL":         s.server.URL + "/rss",
		"ALPHAVANTAGE_API_KEY":  "test_key",
		"ALPHAVANTAGE_BASE_URL": s.server.URL + "/av",
		"VALIDATE_TICKER":       "false",
		"PROVIDER_RETRIES":      "0",
		"ARTICLE_COUNT":         "3",
		"CONCURRENCY":           "1",
		"POLITENESS_DELAY":      "0s",
		"HOST_RATE_LIMIT":       "0",
		"LOG_LEVEL":             "error",
	} {
		t.Setenv(key, value)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// TestIntegration_Pipeline runs news, extraction, scoring and aggregation
// against the mock site.
func TestIntegration_Pipeline(t *testing.T) {
	site := newNewsSite(t)

	res, err := newCoordinator(site.testConfig()).Analyze(context.Background(), "aapl", 3, nil)
	if err != nil {
		t.Fatalf("Analyze() returned unexpected error: %v", err)
	}

	if res.Ticker != "AAPL" || len(res.Articles) != 3 {
		t.Fatalf("result = %s with %d articles, want AAPL with 3", res.Ticker, len(res.Articles))
	}

	first := res.Articles[0]
	if !first.ExtractionSucceeded {
		t.Fatalf("article 1 extraction failed: %v", first.Warning)
	}
	if strings.Contains(first.ExtractedText, "Oops") || strings.Contains(first.ExtractedText, "Markets") {
		t.Errorf("boilerplate leaked into text: %q", first.ExtractedText)
	}
	if first.FullTextSentiment.Polarity <= 0.1 {
		t.Errorf("article 1 polarity = %v, want positive", first.FullTextSentiment.Polarity)
	}

	if res.Articles[1].FullTextSentiment.Polarity >= -0.1 {
		t.Errorf("article 2 polarity = %v, want negative", res.Articles[1].FullTextSentiment.Polarity)
	}

	third := res.Articles[2]
	if third.ExtractionSucceeded {
		t.Error("article 3 ExtractionSucceeded = true for HTTP 500 page")
	}
	if third.ExtractedText != article.ExtractionFailedText {
		t.Errorf("article 3 text = %q, want sentinel", third.ExtractedText)
	}
	if third.FullTextSentiment != third.HeadlineSentiment {
		t.Error("article 3 did not fall back to headline sentiment")
	}
	if third.Publisher != "Unknown" {
		t.Errorf("article 3 publisher = %q, want Unknown", third.Publisher)
	}

	if res.Combined == nil {
		t.Error("Combined = nil, want score over two extracted articles")
	}
	if site.pageHits.Load() != 3 {
		t.Errorf("page hits = %d, want 3", site.pageHits.Load())
	}
}

func TestIntegration_CacheIdempotence(t *testing.T) {
	site := newNewsSite(t)
	c := cache.New(newCoordinator(site.testConfig()), nil)

	first, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}
	second, err := c.GetOrCompute(context.Background(), "AAPL", 3, nil)
	if err != nil {
		t.Fatalf("GetOrCompute() returned unexpected error: %v", err)
	}

	if first != second {
		t.Error("second call did not return the stored result")
	}
	if site.searchHits.Load() != 1 {
		t.Errorf("news requests = %d, want 1", site.searchHits.Load())
	}
	if site.pageHits.Load() != 3 {
		t.Errorf("page requests = %d, want 3", site.pageHits.Load())
	}
}

func TestIntegration_Providers(t *testing.T) {
	tests := []struct {
		provider string
		want     int
	}{
		{config.ProviderYahoo, 3},
		{config.ProviderYahooRSS, 2},
		{config.ProviderAlphavantage, 1},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			site := newNewsSite(t)
			cfg := site.testConfig()
			cfg.NewsProvider = tt.provider

			res, err := newCoordinator(cfg).Analyze(context.Background(), "AAPL", 3, nil)
			if err != nil {
				t.Fatalf("Analyze() returned unexpected error: %v", err)
			}
			if res.SourceErr != nil {
				t.Fatalf("SourceErr = %v", res.SourceErr)
			}
			if len(res.Articles) != tt.want {
				t.Errorf("len(Articles) = %d, want %d", len(res.Articles), tt.want)
			}
			if res.Articles[0].Title != "Apple soars on record iPhone sales" {
				t.Errorf("first title = %q", res.Articles[0].Title)
			}
		})
	}
}

func TestIntegration_ConcurrentProcessing(t *testing.T) {
	site := newNewsSite(t)
	cfg := site.testConfig()
	cfg.Concurrency = 3
	cfg.HostRateLimit = 100

	res, err := newCoordinator(cfg).Analyze(context.Background(), "AAPL", 3, nil)
	if err != nil {
		t.Fatalf("Analyze() returned unexpected error: %v", err)
	}

	want := []string{"Apple soars on record iPhone sales", "Apple faces lawsuit", "Apple holds annual meeting"}
	for i, title := range want {
		if res.Articles[i].Title != title {
			t.Errorf("Articles[%d].Title = %q, want %q", i, res.Articles[i].Title, title)
		}
	}
}

func TestIntegration_ContextCancelled(t *testing.T) {
	site := newNewsSite(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newCoordinator(site.testConfig()).Analyze(ctx, "AAPL", 3, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if res == nil || res.Complete {
		t.Errorf("result = %+v, want incomplete result", res)
	}
	if site.pageHits.Load() != 0 {
		t.Errorf("page requests = %d, want 0", site.pageHits.Load())
	}
}

func TestCLI_Analyze(t *testing.T) {
	site := newNewsSite(t)
	site.setEnv(t)

	out, err := runCLI(t, "", "analyze", "aapl", "--quiet")
	if err != nil {
		t.Fatalf("analyze returned unexpected error: %v", err)
	}

	for _, want := range []string{
		"Sentiment for AAPL (3 articles, 2 with full text)",
		"Recent News Articles for AAPL",
		"Apple faces lawsuit",
		"Publisher: Unknown",
		"Full text unavailable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_AnalyzeNoArticles(t *testing.T) {
	site := newNewsSite(t)
	site.setEnv(t)

	out, err := runCLI(t, "", "analyze", site.emptyTicker, "-q")
	if err != nil {
		t.Fatalf("analyze returned unexpected error: %v", err)
	}
	if n := strings.Count(strings.ToLower(out), "articles found for zzzz"); n != 1 {
		t.Errorf("no-articles message printed %d times, want 1:\n%s", n, out)
	}
}

func TestCLI_AnalyzeBadCount(t *testing.T) {
	site := newNewsSite(t)
	site.setEnv(t)

	if _, err := runCLI(t, "", "analyze", "AAPL", "--count", "11"); err == nil {
		t.Error("analyze --count 11 expected error, got nil")
	}
	if site.searchHits.Load() != 0 {
		t.Errorf("news requests = %d, want 0", site.searchHits.Load())
	}
}

func TestCLI_Session(t *testing.T) {
	site := newNewsSite(t)
	site.setEnv(t)

	input := strings.Join([]string{
		"aapl",
		"AAPL",
		"count 2",
		"AAPL",
		"count 42",
		"clear",
		"AAPL",
		"quit",
	}, "\n")

	out, err := runCLI(t, input, "session", "-q")
	if err != nil {
		t.Fatalf("session returned unexpected error: %v", err)
	}

	if got := site.searchHits.Load(); got != 2 {
		t.Errorf("news requests = %d, want 2 (one before and one after clear)", got)
	}
	for _, want := range []string{
		"Article count set to 2.",
		"Article count must be a number between 1 and 10.",
		"Saved results cleared.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "Sentiment for AAPL"); n != 4 {
		t.Errorf("rendered %d reports, want 4", n)
	}
}

func TestCLI_Score(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"positive args", []string{"score", "I", "absolutely", "love", "this", "stock"}, "", "Positive"},
		{"negative stdin", []string{"score"}, "This is a terrible disaster for the company", "Negative"},
		{"empty", []string{"score"}, "   ", "Please enter some text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("score returned unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}
