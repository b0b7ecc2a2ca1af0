// Package article scores a single headline and the page it links to.
package article

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"tickersentiment/internal/extract"
	"tickersentiment/internal/news"
	"tickersentiment/internal/sentiment"
)

const (
	// ExtractionFailedText stands in for the body of an article whose text
	// could not be extracted.
	ExtractionFailedText = "Could not extract full article text"

	// PreviewLength is the number of characters kept in Record.Preview
	PreviewLength = 500

	// DefaultDelay is the pause after each page fetch
	DefaultDelay = 500 * time.Millisecond
)

// TextExtractor fetches an article page and reduces it to body text.
type TextExtractor interface {
	Extract(ctx context.Context, url string) extract.Extraction
}

// Record is the analysis of one headline and, when reachable, its article.
type Record struct {
	news.Headline

	HeadlineSentiment sentiment.Score

	// FullTextSentiment falls back to HeadlineSentiment when extraction fails
	FullTextSentiment sentiment.Score

	// ExtractedText is ExtractionFailedText when ExtractionSucceeded is false
	ExtractedText       string
	ExtractionSucceeded bool
	Preview             string

	// Warning is the recoverable extraction error, if any
	Warning error
}

// Processor turns headlines into Records.
type Processor struct {
	extractor TextExtractor
	scorer    *sentiment.Scorer
	delay     time.Duration
}

// NewProcessor creates a Processor. A negative delay is treated as zero.
func NewProcessor(extractor TextExtractor, scorer *sentiment.Scorer, delay time.Duration) *Processor {
	if scorer == nil {
		scorer = sentiment.NewScorer(nil)
	}
	if delay < 0 {
		delay = 0
	}

	return &Processor{
		extractor: extractor,
		scorer:    scorer,
		delay:     delay,
	}
}

// Process analyzes h. It never fails: extraction problems are reported through
// ExtractionSucceeded and Warning.
func (p *Processor) Process(ctx context.Context, h news.Headline) Record {
	rec := Record{
		Headline:          h,
		HeadlineSentiment: p.scorer.Score(strings.TrimSpace(h.Title + " " + h.Summary)),
	}

	var text string
	if h.Link != "" {
		start := time.Now()
		ext := p.extractor.Extract(ctx, h.Link)
		text, rec.Warning = ext.Text, ext.Err

		slog.Debug("article extracted",
			"url", h.Link,
			"chars", len(text),
			"elapsed", time.Since(start))

		p.pause(ctx)
	}

	if strings.TrimSpace(text) != "" {
		rec.FullTextSentiment = p.scorer.Score(text)
		rec.ExtractionSucceeded = true
		rec.ExtractedText = text
		rec.Warning = nil
	} else {
		rec.FullTextSentiment = rec.HeadlineSentiment
		rec.ExtractedText = ExtractionFailedText
	}

	rec.Preview = Preview(rec.ExtractedText)
	return rec
}

// pause waits out the politeness delay or until ctx is done.
func (p *Processor) pause(ctx context.Context) {
	if p.delay == 0 {
		return
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Preview returns the first PreviewLength characters of text followed by an
// ellipsis when text is longer.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:PreviewLength]) + "..."
}
