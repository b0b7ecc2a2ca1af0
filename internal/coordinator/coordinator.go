package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/iter"

	"tickersentiment/internal/article"
	"tickersentiment/internal/news"
	"tickersentiment/internal/sentiment"
)

// DefaultNewsTimeout bounds the news query
const DefaultNewsTimeout = 15 * time.Second

// Processor turns one headline into an article.Record
type Processor interface {
	Process(ctx context.Context, h news.Headline) article.Record
}

// ProgressSink observes a running analysis. Progress receives the completed
// fraction in (0, 1]; Status receives human-readable step descriptions.
type ProgressSink interface {
	Progress(fraction float64)
	Status(msg string)
}

// NopSink discards all updates
type NopSink struct{}

func (NopSink) Progress(float64) {}
func (NopSink) Status(string)    {}

// Option customizes a Coordinator
type Option func(*Coordinator)

// WithConcurrency sets how many articles are processed at once. Values below
// 1 are treated as 1 (strictly sequential).
func WithConcurrency(n int) Option {
	return func(c *Coordinator) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// WithNewsTimeout sets the hard timeout on the news query
func WithNewsTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.newsTimeout = d
		}
	}
}

// Coordinator runs the news → articles → sentiment pipeline for a ticker
type Coordinator struct {
	source      news.Source
	processor   Processor
	scorer      *sentiment.Scorer
	concurrency int
	newsTimeout time.Duration
}

// New creates a new Coordinator
func New(source news.Source, processor Processor, scorer *sentiment.Scorer, opts ...Option) *Coordinator {
	if scorer == nil {
		scorer = sentiment.NewScorer(nil)
	}

	c := &Coordinator{
		source:      source,
		processor:   processor,
		scorer:      scorer,
		concurrency: 1,
		newsTimeout: DefaultNewsTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze fetches up to count headlines for ticker, processes each article
// and aggregates the scores.
//
// Provider failures never surface as an error: the result is the empty
// sentinel with SourceErr and a notice set. The only error returned is the
// context's; the result is then a valid aggregate over the articles finished
// before the cancel with Complete false. An article whose processing was
// interrupted by the cancel is not part of the result.
func (c *Coordinator) Analyze(ctx context.Context, ticker string, count int, sink ProgressSink) (*Result, error) {
	if sink == nil {
		sink = NopSink{}
	}
	ticker = news.NormalizeTicker(ticker)

	sink.Status(fmt.Sprintf("Fetching news for %s...", ticker))

	newsCtx, cancel := context.WithTimeout(ctx, c.newsTimeout)
	headlines, srcErr := news.Fetch(newsCtx, c.source, ticker, count)
	cancel()

	res := &Result{
		Ticker:       ticker,
		Articles:     []article.Record{},
		OverallLabel: sentiment.Neutral,
		Complete:     true,
	}

	if len(headlines) == 0 {
		if srcErr != nil {
			res.SourceErr = srcErr
		}
		res.Notices = append(res.Notices, fmt.Sprintf("no articles found for %s", ticker))
		if err := ctx.Err(); err != nil {
			res.Complete = false
			return res, err
		}
		return res, nil
	}

	start := time.Now()

	var records []article.Record
	if c.concurrency > 1 && len(headlines) > 1 {
		records = c.processConcurrent(ctx, headlines, sink)
	} else {
		records = c.processSequential(ctx, headlines, sink)
	}

	res.Articles = records
	c.aggregate(res)

	slog.Debug("analysis finished",
		"ticker", ticker,
		"articles", len(records),
		"of", len(headlines),
		"elapsed", time.Since(start))

	if len(records) < len(headlines) {
		res.Complete = false
		res.Notices = append(res.Notices,
			fmt.Sprintf("analysis cancelled after %d of %d articles", len(records), len(headlines)))
		return res, ctx.Err()
	}

	return res, nil
}

func (c *Coordinator) processSequential(ctx context.Context, headlines []news.Headline, sink ProgressSink) []article.Record {
	total := len(headlines)
	records := make([]article.Record, 0, total)

	for i, h := range headlines {
		if ctx.Err() != nil {
			break
		}

		sink.Status(fmt.Sprintf("Processing article %d of %d...", i+1, total))
		rec := c.processor.Process(ctx, h)

		// A cancel that lands mid-article aborts its fetch, which would
		// otherwise read as a failed extraction.
		if ctx.Err() != nil {
			break
		}

		records = append(records, rec)
		sink.Progress(float64(i+1) / float64(total))
	}

	return records
}

type slot struct {
	rec  article.Record
	done bool
}

// processConcurrent processes up to c.concurrency articles at once. Output
// keeps source order; progress reports the number completed so far. On
// cancellation only the longest finished prefix is returned; articles still
// in flight when ctx is cancelled are discarded.
func (c *Coordinator) processConcurrent(ctx context.Context, headlines []news.Headline, sink ProgressSink) []article.Record {
	total := len(headlines)

	var (
		mu        sync.Mutex
		completed int
	)

	mapper := iter.Mapper[news.Headline, slot]{MaxGoroutines: c.concurrency}
	slots := mapper.Map(headlines, func(h *news.Headline) slot {
		if ctx.Err() != nil {
			return slot{}
		}

		rec := c.processor.Process(ctx, *h)
		if ctx.Err() != nil {
			return slot{}
		}

		mu.Lock()
		completed++
		sink.Status(fmt.Sprintf("Processed article %d of %d...", completed, total))
		sink.Progress(float64(completed) / float64(total))
		mu.Unlock()

		return slot{rec: rec, done: true}
	})

	records := make([]article.Record, 0, total)
	for _, s := range slots {
		if !s.done {
			break
		}
		records = append(records, s.rec)
	}
	return records
}

// aggregate fills the averages, overall label and combined score of res from
// res.Articles.
func (c *Coordinator) aggregate(res *Result) {
	res.OverallLabel = sentiment.Neutral
	res.AvgPolarity, res.AvgSubjectivity = 0, 0
	res.Combined = nil

	n := len(res.Articles)
	if n == 0 {
		return
	}

	var sumP, sumS float64
	texts := make([]string, 0, n)
	for _, rec := range res.Articles {
		sumP += rec.FullTextSentiment.Polarity
		sumS += rec.FullTextSentiment.Subjectivity
		if rec.ExtractionSucceeded {
			texts = append(texts, rec.ExtractedText)
		}
	}

	res.AvgPolarity = sumP / float64(n)
	res.AvgSubjectivity = sumS / float64(n)
	res.OverallLabel = sentiment.LabelFor(res.AvgPolarity)

	if combined := strings.Join(texts, " "); strings.TrimSpace(combined) != "" {
		score := c.scorer.Score(combined)
		res.Combined = &score
	}
}
