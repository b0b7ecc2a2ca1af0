package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// News providers
const (
	ProviderYahoo        = "yahoo"
	ProviderYahooRSS     = "yahoo_rss"
	ProviderAlphavantage = "alphavantage"
)

// Article count bounds
const (
	MinArticleCount = 1
	MaxArticleCount = 10
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the ticker sentiment application.
type Config struct {
	// News provider selection and endpoints
	NewsProvider        string `mapstructure:"news_provider"`
	YahooSearchURL      string `mapstructure:"yahoo_search_url"`
	YahooRSSURL         string `mapstructure:"yahoo_rss_url"`
	AlphavantageAPIKey  string `mapstructure:"alphavantage_api_key"`
	AlphavantageBaseURL string `mapstructure:"alphavantage_base_url"`
	ValidateTicker      bool   `mapstructure:"validate_ticker"`
	ProviderRetries     int    `mapstructure:"provider_retries"`

	// Analysis
	ArticleCount int `mapstructure:"article_count"`
	Concurrency  int `mapstructure:"concurrency"`

	// Politeness and timeouts
	FetchTimeout    time.Duration `mapstructure:"fetch_timeout"`
	NewsTimeout     time.Duration `mapstructure:"news_timeout"`
	PolitenessDelay time.Duration `mapstructure:"politeness_delay"`
	HostRateLimit   float64       `mapstructure:"host_rate_limit"`
	UserAgent       string        `mapstructure:"user_agent"`

	// Boilerplate lists text fragments removed from extracted articles.
	// From the environment, fragments are separated by "|".
	Boilerplate []string `mapstructure:"boilerplate"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from a .env file, environment variables and an
// optional config file. Environment variables take precedence over config
// file values.
//
// Recognised environment variables:
//   - NEWS_PROVIDER (yahoo, yahoo_rss or alphavantage; default yahoo)
//   - YAHOO_SEARCH_URL, YAHOO_RSS_URL (optional, default to production)
//   - ALPHAVANTAGE_API_KEY (required for the alphavantage provider)
//   - ALPHAVANTAGE_BASE_URL (optional, defaults to production)
//   - VALIDATE_TICKER (check the symbol exists before querying news)
//   - PROVIDER_RETRIES (retries for news provider requests, default 3)
//   - ARTICLE_COUNT (1-10, default 3)
//   - CONCURRENCY (articles processed at once, default 1)
//   - FETCH_TIMEOUT, NEWS_TIMEOUT, POLITENESS_DELAY (durations)
//   - HOST_RATE_LIMIT (requests per second per host, 0 disables)
//   - USER_AGENT, BOILERPLATE, LOG_LEVEL
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.tickersentiment")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	return decode(v)
}

// LoadFromFile reads configuration from the given file, with environment
// variables still taking precedence. Unlike Load, a missing file is an error.
func LoadFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	v.SetDefault("news_provider", ProviderYahoo)
	v.SetDefault("yahoo_search_url", "https://query2.finance.yahoo.com/v1/finance/search")
	v.SetDefault("yahoo_rss_url", "https://feeds.finance.yahoo.com/rss/2.0/headline")
	v.SetDefault("alphavantage_base_url", "https://www.alphavantage.co/query")
	v.SetDefault("validate_ticker", false)
	v.SetDefault("provider_retries", 3)
	v.SetDefault("article_count", 3)
	v.SetDefault("concurrency", 1)
	v.SetDefault("fetch_timeout", "10s")
	v.SetDefault("news_timeout", "15s")
	v.SetDefault("politeness_delay", "500ms")
	v.SetDefault("host_rate_limit", 2.0)
	v.SetDefault("log_level", "info")

	for key, env := range map[string]string{
		"news_provider":         "NEWS_PROVIDER",
		"yahoo_search_url":      "YAHOO_SEARCH_URL",
		"yahoo_rss_url":         "YAHOO_RSS_URL",
		"alphavantage_api_key":  "ALPHAVANTAGE_API_KEY",
		"alphavantage_base_url": "ALPHAVANTAGE_BASE_URL",
		"validate_ticker":       "VALIDATE_TICKER",
		"provider_retries":      "PROVIDER_RETRIES",
		"article_count":         "ARTICLE_COUNT",
		"concurrency":           "CONCURRENCY",
		"fetch_timeout":         "FETCH_TIMEOUT",
		"news_timeout":          "NEWS_TIMEOUT",
		"politeness_delay":      "POLITENESS_DELAY",
		"host_rate_limit":       "HOST_RATE_LIMIT",
		"user_agent":            "USER_AGENT",
		"boilerplate":           "BOILERPLATE",
		"log_level":             "LOG_LEVEL",
	} {
		v.BindEnv(key, env)
	}

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc("|"),
	))
	if err := v.Unmarshal(config, hooks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.NewsProvider = strings.ToLower(strings.TrimSpace(config.NewsProvider))

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string

	switch c.NewsProvider {
	case ProviderYahoo, ProviderYahooRSS:
	case ProviderAlphavantage:
		if c.AlphavantageAPIKey == "" {
			problems = append(problems, "ALPHAVANTAGE_API_KEY is required for the alphavantage provider")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown NEWS_PROVIDER %q", c.NewsProvider))
	}

	if c.ArticleCount < MinArticleCount || c.ArticleCount > MaxArticleCount {
		problems = append(problems, fmt.Sprintf("ARTICLE_COUNT must be between %d and %d", MinArticleCount, MaxArticleCount))
	}
	if c.ProviderRetries < 0 {
		problems = append(problems, "PROVIDER_RETRIES must not be negative")
	}
	if c.Concurrency < 1 {
		problems = append(problems, "CONCURRENCY must be at least 1")
	}
	if c.FetchTimeout <= 0 {
		problems = append(problems, "FETCH_TIMEOUT must be positive")
	}
	if c.NewsTimeout <= 0 {
		problems = append(problems, "NEWS_TIMEOUT must be positive")
	}
	if c.PolitenessDelay < 0 {
		problems = append(problems, "POLITENESS_DELAY must not be negative")
	}
	if c.HostRateLimit < 0 {
		problems = append(problems, "HOST_RATE_LIMIT must not be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", s)
	}
	return level, nil
}
