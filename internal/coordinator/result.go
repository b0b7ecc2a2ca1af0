package coordinator

import (
	"tickersentiment/internal/article"
	"tickersentiment/internal/sentiment"
)

// Result is the outcome of analysing one ticker.
type Result struct {
	Ticker   string
	Articles []article.Record

	// Means of each article's FullTextSentiment; zero when Articles is empty
	AvgPolarity     float64
	AvgSubjectivity float64
	OverallLabel    sentiment.Label

	// Combined scores the concatenated text of every successfully extracted
	// article. It is nil when no extraction succeeded.
	Combined *sentiment.Score

	// SourceErr is the news provider failure, if any
	SourceErr error

	// Notices are messages for the user, e.g. that no articles were found
	Notices []string

	// Complete is false when the run was cancelled part way; Articles is
	// then a prefix of the headlines in source order.
	Complete bool
}

// Empty reports whether no articles were analyzed.
func (r *Result) Empty() bool {
	return len(r.Articles) == 0
}

// ExtractedCount returns how many articles had their full text extracted.
func (r *Result) ExtractedCount() int {
	n := 0
	for _, rec := range r.Articles {
		if rec.ExtractionSucceeded {
			n++
		}
	}
	return n
}
