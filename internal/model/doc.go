// Package model defines the core data structures used throughout newslens.
//
// This package contains the following main types:
//   - ArticleRef: A single search result pointing at a news article
//   - KeywordStat: Dual-counted statistics for one token
//   - AnalysisResult: The final outcome of one analysis run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (pipeline, aggregate, report, history) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
