package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values follow the Naver Open API limits and conservative
// politeness settings for article fetching.
const (
	// DefaultPageSize is the number of search results requested per page.
	// 100 is the maximum the Naver news search API accepts per request,
	// so larger collections page through multiple requests.
	DefaultPageSize = 100

	// MaxArticles caps how many articles one run may collect.
	// The search API stops returning useful results past roughly this point,
	// and larger runs hammer the publisher for diminishing returns.
	MaxArticles = 1000

	// DefaultArticles is the number of articles collected when the user
	// does not specify one. Small enough for a quick interactive run.
	DefaultArticles = 10

	// DefaultTopN is the per-article keyword cap. Fifty keywords per
	// article keeps the aggregate table focused on tokens that actually
	// recur across articles.
	DefaultTopN = 50

	// DefaultSearchTimeout is the per-request timeout for the search API.
	// The API responds quickly; ten seconds covers transient slowness.
	DefaultSearchTimeout = 10 * time.Second

	// DefaultArticleTimeout is the per-request timeout for article pages.
	// Article hosts are fast CDN-backed pages; five seconds is generous.
	DefaultArticleTimeout = 5 * time.Second

	// DefaultArticleDelay is the pause between article fetches.
	// This is a politeness setting to avoid hammering the article host.
	// Can be adjusted via the --article-delay CLI flag.
	DefaultArticleDelay = 100 * time.Millisecond

	// DefaultPageDelay is the pause between search API pages.
	// The search API enforces quota rather than rate, so no delay by default.
	DefaultPageDelay = 0 * time.Millisecond

	// DefaultConcurrency is the number of articles processed at once.
	// Sequential by default; the shared rate limiter keeps higher values
	// polite toward the article host.
	DefaultConcurrency = 1

	// MaxConcurrency bounds the --concurrency flag.
	MaxConcurrency = 16

	// AppName is the application name used for XDG directory paths.
	AppName = "newslens"

	// DefaultUserAgent identifies newslens in HTTP requests.
	// Using a descriptive User-Agent is good practice and allows operators
	// to identify collector traffic in their logs.
	DefaultUserAgent = "newslens/1.0 (+https://github.com/newslens/newslens)"

	// DefaultMaxBodySize limits the maximum article body size to read.
	// 2MB is ample for news article HTML while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 2 * 1024 * 1024 // 2MB
)

// Config holds all configuration options for newslens.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., SearchConfig, OutputConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Keyword is the search keyword to analyze.
	Keyword string

	// Articles is the number of articles to collect.
	Articles int

	// TopN is the per-article keyword cap.
	TopN int

	// PageSize is the number of search results requested per API page.
	PageSize int

	// Concurrency is the number of articles processed at once.
	Concurrency int

	// ArticleDelay is the pause between article fetches.
	// This is a politeness setting; lower values risk rate limiting.
	ArticleDelay time.Duration

	// PageDelay is the pause between search API pages.
	PageDelay time.Duration

	// SearchTimeout is the per-request timeout for the search API.
	SearchTimeout time.Duration

	// ArticleTimeout is the per-request timeout for article pages.
	ArticleTimeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONOutput enables JSON result output instead of human-readable format.
	// Mutually exclusive with MarkdownOutput and CSVOutput.
	JSONOutput bool

	// MarkdownOutput enables Markdown result output.
	// Mutually exclusive with JSONOutput and CSVOutput.
	MarkdownOutput bool

	// CSVOutput enables CSV export of the keyword ranking.
	// Mutually exclusive with JSONOutput and MarkdownOutput.
	CSVOutput bool

	// OutputFile is the output file path for the result.
	// When set, the result is written to this file in addition to stdout.
	OutputFile string

	// Profile selects the credential profile from the config file.
	Profile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .newslens in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// ModelPath is the path to a trained word-score model file.
	// When empty, a pattern-based fallback tokenizer is used.
	ModelPath string

	// ModelVariant selects the scoring variant of the word-score model.
	// Either "cohesion" or "hybrid".
	ModelVariant string

	// StopwordPath overrides the stopword file location.
	// Defaults to the XDG data directory.
	StopwordPath string

	// DBDir is the directory path for storing the run history database.
	// Defaults to the XDG data directory.
	DBDir string

	// SaveHistory indicates whether to persist successful runs.
	SaveHistory bool

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum article body size in bytes to read.
	MaxBodySize int64
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeouts, page size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Articles:       DefaultArticles,
		TopN:           DefaultTopN,
		PageSize:       DefaultPageSize,
		Concurrency:    DefaultConcurrency,
		ArticleDelay:   DefaultArticleDelay,
		PageDelay:      DefaultPageDelay,
		SearchTimeout:  DefaultSearchTimeout,
		ArticleTimeout: DefaultArticleTimeout,
		ModelVariant:   "cohesion",
		UserAgent:      DefaultUserAgent,
		MaxBodySize:    DefaultMaxBodySize,
		SaveHistory:    true,
	}
}

// XDGDataDir returns the XDG data directory for newslens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/newslens
// On macOS: ~/Library/Application Support/newslens
// On Windows: %LOCALAPPDATA%\newslens
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for newslens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/newslens
// On macOS: ~/Library/Application Support/newslens
// On Windows: %APPDATA%\newslens
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any collection begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Keyword == "" {
		return ErrNoKeyword
	}

	if c.Articles < 1 || c.Articles > MaxArticles {
		return ErrInvalidArticleCount
	}

	if c.TopN < 1 {
		return ErrInvalidTopN
	}

	if c.PageSize < 1 || c.PageSize > DefaultPageSize {
		return ErrInvalidPageSize
	}

	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return ErrInvalidConcurrency
	}

	if c.ArticleDelay < 0 || c.PageDelay < 0 {
		return ErrInvalidDelay
	}

	if c.SearchTimeout <= 0 || c.ArticleTimeout <= 0 {
		return ErrInvalidTimeout
	}

	// Output formats are mutually exclusive
	formats := 0
	for _, enabled := range []bool{c.JSONOutput, c.MarkdownOutput, c.CSVOutput} {
		if enabled {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingOutputFormats
	}

	if c.ModelVariant != "cohesion" && c.ModelVariant != "hybrid" {
		return ErrInvalidModelVariant
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
