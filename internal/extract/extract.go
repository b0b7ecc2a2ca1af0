// Package extract turns article pages into plain body text.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tickersentiment/internal/fetcher"
)

// DefaultBoilerplate is the interstitial Yahoo inserts into syndicated
// articles when its paywall script fails to load.
var DefaultBoilerplate = []string{
	"Oops, something went wrong Unlock stock picks and a broker-level newsfeed that powers Wall",
}

// removedSelectors are the page regions that never hold article body text
const removedSelectors = "script, style, header, footer, nav, aside"

// Extraction is the outcome of extracting one article. Text is empty exactly
// when Err is set.
type Extraction struct {
	Text string
	Err  error
}

// OK reports whether extraction produced text.
func (e Extraction) OK() bool {
	return e.Err == nil && e.Text != ""
}

// Extractor fetches pages and reduces them to paragraph text.
type Extractor struct {
	fetcher     fetcher.Fetcher
	boilerplate []string
}

// New creates an extractor. A nil boilerplate uses DefaultBoilerplate; an
// empty non-nil slice disables fragment removal.
func New(f fetcher.Fetcher, boilerplate []string) *Extractor {
	if boilerplate == nil {
		boilerplate = DefaultBoilerplate
	}

	return &Extractor{
		fetcher:     f,
		boilerplate: boilerplate,
	}
}

// Extract fetches url and returns its body text. It never fails hard: every
// failure comes back as an empty Extraction carrying a *fetcher.FetchError.
func (x *Extractor) Extract(ctx context.Context, url string) (ext Extraction) {
	defer func() {
		if r := recover(); r != nil {
			ext = Extraction{Err: fetcher.NewParseError("extraction panicked", fmt.Errorf("%v", r))}
		}
		if ext.Err != nil {
			slog.Warn("article extraction failed", "url", url, "error", ext.Err)
		}
	}()

	page, err := x.fetcher.Get(ctx, url)
	if err != nil {
		return Extraction{Err: fetcher.ClassifyTransportError(err)}
	}

	if !isHTML(page.ContentType) {
		return Extraction{Err: fetcher.NewParseError(
			fmt.Sprintf("unsupported content type %q", page.ContentType), nil)}
	}

	text, err := x.Text(page.Body)
	if err != nil {
		return Extraction{Err: err}
	}

	return Extraction{Text: text}
}

// Text reduces an HTML document to the cleaned text of its paragraphs.
func (x *Extractor) Text(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fetcher.NewParseError("failed to parse html", err)
	}

	doc.Find(removedSelectors).Remove()

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	text := collapse(strings.Join(parts, " "))
	for _, fragment := range x.boilerplate {
		if fragment == "" {
			continue
		}
		text = strings.ReplaceAll(text, fragment, "")
	}
	text = collapse(text)

	if text == "" {
		return "", fetcher.NewParseError("no paragraph text found", nil)
	}

	return text, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isHTML accepts a missing content type, any HTML flavour and plain text.
func isHTML(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "":
		return true
	case strings.Contains(ct, "html"):
		return true
	case strings.HasPrefix(ct, "text/"):
		return true
	}
	return false
}
