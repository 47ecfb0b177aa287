// Package pipeline drives one analysis run end to end: page through the
// search API, extract keywords from every collected article, fold the
// results into the aggregate table, and rank it.
//
// # Failure policy
//
// The two halves of the run fail differently. Search paging is fatal: a
// credential, quota, or transport failure aborts the run with no partial
// result, because under-collecting search results silently would corrupt
// every downstream statistic. Article extraction is recoverable: a failed
// article contributes nothing, is counted as skipped, and the run moves on.
//
// # Concurrency
//
// Article fetches are independent, so the pipeline can fan them out across
// a bounded worker pool (errgroup with a limit) sharing one rate limiter to
// stay polite to the publisher. Aggregation folds results in search-result
// order regardless of completion order, so concurrency never changes the
// final ranking. A concurrency of 1 reproduces the strictly sequential
// reference behavior.
package pipeline
