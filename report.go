package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"tickersentiment/internal/article"
	"tickersentiment/internal/coordinator"
	"tickersentiment/internal/sentiment"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	barWidth   = 30
)

// writeReport renders a Result as plain text. A finished run without articles
// gets a single "no articles" line in place of its notices.
func writeReport(w io.Writer, res *coordinator.Result) {
	if res.Empty() && res.Complete {
		fmt.Fprintf(w, "⚠️  No news articles found for %s. Please check the ticker symbol and try again.\n", res.Ticker)
		writeSourceErr(w, res)
		return
	}

	for _, notice := range res.Notices {
		fmt.Fprintf(w, "⚠️  %s\n", notice)
	}
	writeSourceErr(w, res)
	if res.Empty() {
		return
	}

	fmt.Fprintf(w, "\nSentiment for %s (%d articles, %d with full text)\n", res.Ticker, len(res.Articles), res.ExtractedCount())
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Overall:   %s %s  (avg polarity %.2f, avg subjectivity %.2f)\n",
		res.OverallLabel, res.OverallLabel.Emoji(), res.AvgPolarity, res.AvgSubjectivity)
	if res.Combined != nil {
		fmt.Fprintf(w, "Combined:  %s  (polarity %.2f, subjectivity %.2f)\n",
			labelText(res.Combined.Label), res.Combined.Polarity, res.Combined.Subjectivity)
	} else {
		fmt.Fprintln(w, "Combined:  unavailable, no article text could be extracted")
	}

	fmt.Fprintf(w, "\nRecent News Articles for %s\n", res.Ticker)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, rec := range res.Articles {
		writeArticle(w, i+1, rec)
	}
}

func writeSourceErr(w io.Writer, res *coordinator.Result) {
	if res.SourceErr != nil {
		fmt.Fprintf(w, "   news provider error: %v\n", res.SourceErr)
	}
}

func writeArticle(w io.Writer, n int, rec article.Record) {
	fmt.Fprintf(w, "[%d] %s %s\n", n, rec.Title, rec.FullTextSentiment.Label.Emoji())
	fmt.Fprintf(w, "    Publisher: %s - %s\n", rec.Publisher, publishedText(rec.PublishedAt))
	fmt.Fprintf(w, "    Sentiment: %s  polarity %.2f  subjectivity %.2f\n",
		labelText(rec.FullTextSentiment.Label), rec.FullTextSentiment.Polarity, rec.FullTextSentiment.Subjectivity)
	fmt.Fprintf(w, "    Headline:  %s  polarity %.2f\n",
		labelText(rec.HeadlineSentiment.Label), rec.HeadlineSentiment.Polarity)
	if !rec.ExtractionSucceeded {
		if rec.Warning != nil {
			fmt.Fprintf(w, "    Full text unavailable (%v); using headline sentiment\n", rec.Warning)
		} else {
			fmt.Fprintln(w, "    Full text unavailable; using headline sentiment")
		}
	}
	fmt.Fprintf(w, "    Preview:   %s\n", rec.Preview)
	if rec.Link != "" {
		fmt.Fprintf(w, "    Link:      %s\n", rec.Link)
	}
	fmt.Fprintln(w)
}

// writeScore renders a single free-text Score
func writeScore(w io.Writer, s sentiment.Score) {
	fmt.Fprintln(w, "📊 Analysis Results")
	fmt.Fprintf(w, "Overall Sentiment:  %s\n", labelText(s.Label))
	fmt.Fprintf(w, "Polarity Score:     %.2f  (-1 very negative to +1 very positive)\n", s.Polarity)
	fmt.Fprintf(w, "Subjectivity Score: %.2f  (0 factual to 1 opinionated)\n", s.Subjectivity)
}

func labelText(l sentiment.Label) string {
	return fmt.Sprintf("%s %s", l, l.Emoji())
}

func publishedText(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return fmt.Sprintf("%s (%s)", t.Local().Format(timeLayout), humanize.Time(t))
}

// progressSink draws a progress bar with the latest status on one terminal
// line.
type progressSink struct {
	mu       sync.Mutex
	w        io.Writer
	quiet    bool
	fraction float64
	status   string
	drawn    bool
}

func newProgressSink(w io.Writer, quiet bool) *progressSink {
	return &progressSink{w: w, quiet: quiet}
}

func (p *progressSink) Progress(fraction float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fraction = fraction
	p.draw()
}

func (p *progressSink) Status(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = msg
	p.draw()
}

// Done ends the progress line.
func (p *progressSink) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn && !p.quiet {
		fmt.Fprintln(p.w)
	}
	p.drawn = false
}

func (p *progressSink) draw() {
	if p.quiet {
		return
	}
	filled := int(p.fraction * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	fmt.Fprintf(p.w, "\r\033[K[%s%s] %3.0f%% %s",
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled),
		p.fraction*100, p.status)
	p.drawn = true
}
