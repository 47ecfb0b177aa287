package extract

import "fmt"

// ErrorKind classifies a per-article failure.
type ErrorKind int

const (
	// KindFetch covers transport failures, timeouts, and non-200 statuses
	// while retrieving the article page.
	KindFetch ErrorKind = iota

	// KindParse covers markup that could not be parsed or a page without
	// the expected content container.
	KindParse

	// KindTokenize covers tokenizer failures, including running without
	// any tokenizer bound.
	KindTokenize
)

// String returns the kind's name for logs.
func (k ErrorKind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindParse:
		return "parse"
	case KindTokenize:
		return "tokenize"
	default:
		return "unknown"
	}
}

// ArticleError is a recoverable per-article failure. The pipeline inspects
// the kind for logging and skip accounting, then moves on to the next
// article; it never propagates these upward.
type ArticleError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Link is the article URL that failed.
	Link string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ArticleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("article %s failed (%s): %v", e.Link, e.Kind, e.Err)
	}
	return fmt.Sprintf("article %s failed (%s)", e.Link, e.Kind)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ArticleError) Unwrap() error {
	return e.Err
}
