package main

import (
	"tickersentiment/internal/alphavantage"
	"tickersentiment/internal/article"
	"tickersentiment/internal/config"
	"tickersentiment/internal/coordinator"
	"tickersentiment/internal/extract"
	"tickersentiment/internal/fetcher"
	"tickersentiment/internal/news"
	"tickersentiment/internal/ratelimit"
	"tickersentiment/internal/sentiment"
	"tickersentiment/internal/yahoo"
)

// newSource creates the configured news provider
func newSource(cfg *config.Config) news.Source {
	var src news.Source

	switch cfg.NewsProvider {
	case config.ProviderYahooRSS:
		src = yahoo.NewFeedSource(cfg.YahooRSSURL, cfg.UserAgent, cfg.ProviderRetries)
	case config.ProviderAlphavantage:
		src = alphavantage.NewNewsSource(cfg.AlphavantageAPIKey, cfg.AlphavantageBaseURL, cfg.ProviderRetries)
	default:
		src = yahoo.NewSearchSource(cfg.YahooSearchURL, cfg.UserAgent, cfg.ProviderRetries)
	}

	if cfg.ValidateTicker {
		src = news.Validated(src, yahoo.NewQuoteValidator())
	}
	return src
}

// newCoordinator wires the full analysis pipeline from configuration
func newCoordinator(cfg *config.Config) *coordinator.Coordinator {
	limiter := ratelimit.New(cfg.HostRateLimit)
	pages := fetcher.NewPageFetcher(cfg.UserAgent, cfg.FetchTimeout, limiter)
	extractor := extract.New(pages, cfg.Boilerplate)

	scorer := sentiment.NewScorer(nil)
	processor := article.NewProcessor(extractor, scorer, cfg.PolitenessDelay)

	return coordinator.New(newSource(cfg), processor, scorer,
		coordinator.WithConcurrency(cfg.Concurrency),
		coordinator.WithNewsTimeout(cfg.NewsTimeout),
	)
}
