package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoKeyword is returned when no search keyword is specified.
	ErrNoKeyword = errors.New("no search keyword specified")

	// ErrInvalidArticleCount is returned when the article count is out of range.
	// The collection cap exists because the search API returns diminishing
	// results past it.
	ErrInvalidArticleCount = errors.New("invalid article count: must be between 1 and 1000")

	// ErrInvalidTopN is returned when the per-article keyword cap is not positive.
	ErrInvalidTopN = errors.New("invalid top-n: must be positive")

	// ErrInvalidPageSize is returned when the page size is out of the API range.
	// The Naver search API accepts display values between 1 and 100.
	ErrInvalidPageSize = errors.New("invalid page size: must be between 1 and 100")

	// ErrInvalidConcurrency is returned when the worker count is out of range.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be between 1 and 16")

	// ErrInvalidDelay is returned when a delay is negative.
	// A negative delay is invalid; use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidTimeout is returned when a timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingOutputFormats is returned when more than one of --json,
	// --markdown, and --csv is specified. Only one output format can be
	// used at a time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: --json, --markdown, and --csv cannot be combined")

	// ErrInvalidModelVariant is returned when the model variant is unknown.
	ErrInvalidModelVariant = errors.New("invalid model variant: must be \"cohesion\" or \"hybrid\"")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// A negative body size is invalid; use 0 to use the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrNoCredentials is returned when no API credentials are available
	// from the environment or the selected config profile.
	ErrNoCredentials = errors.New("no API credentials: set NEWSLENS_CLIENT_ID and NEWSLENS_CLIENT_SECRET or configure a profile")

	// ErrProfileNotFound is returned when the named credential profile is
	// missing from the config file.
	ErrProfileNotFound = errors.New("credential profile not found in config file")
)
