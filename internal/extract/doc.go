// Package extract turns one news article into its top-N keyword counts.
//
// The extractor runs the per-article half of the analysis: fetch the page,
// locate the publisher's article body container, clean the text, tokenize,
// filter against length bounds and the stopword set, count, and truncate to
// the N most frequent tokens.
//
// # Failure policy
//
// Everything that can go wrong for a single article is recoverable. An
// ineligible link, a missing content container, a timeout, or a parse
// failure all yield an empty keyword map; typed ArticleError values let the
// pipeline count and log what was skipped without ever aborting the run.
// A handful of unreachable articles must never sink an analysis of hundreds.
package extract
