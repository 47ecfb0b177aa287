// Package aggregate folds per-article keyword maps into the cross-article
// statistic table and produces its final deterministic ranking.
//
// # Dual counting
//
// Every token carries two counters. The article-occurrence count goes up by
// exactly one per contributing article, no matter how often the token
// appeared inside it; the total frequency sums the in-article counts. The
// first measures breadth, the second intensity, and ranking privileges
// breadth: a word mentioned across many articles outranks a word hammered
// in one.
//
// # Determinism
//
// Ties beyond both counters break by the order tokens were first seen, where
// "first" is defined over the search-result order of the contributing
// articles rather than fold arrival order. Folding the same articles in any
// order therefore yields the same ranking, which is what lets the pipeline
// fetch articles concurrently.
package aggregate
