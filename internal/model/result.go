package model

import "time"

// KeywordStat holds the dual counters tracked for one token across all
// analyzed articles.
//
// ArticleCount measures breadth: how many distinct articles mentioned the
// token at all. TotalFrequency measures intensity: the summed in-article
// occurrence counts. Breadth is the primary ranking signal because a word
// appearing moderately in many articles is a stronger topical signal than a
// word hammered in one article.
//
// Invariant: for every token that appears at least once,
// 1 <= ArticleCount <= TotalFrequency, since each contributing article adds
// exactly 1 to ArticleCount and at least 1 to TotalFrequency.
type KeywordStat struct {
	// Token is the normalized word.
	Token string `json:"token"`

	// ArticleCount is the number of distinct articles whose top-N selection
	// contained the token.
	ArticleCount int `json:"article_occurrence_count"` //nolint:tagliatelle // export column name

	// TotalFrequency is the summed per-article occurrence count.
	TotalFrequency int `json:"total_frequency"`
}

// AnalysisResult is the outcome of one analysis run: the ranked keyword
// table plus the collected article references and run bookkeeping.
//
// Once a run completes the result is read-only; callers render or persist it
// but never mutate it.
type AnalysisResult struct {
	// Keyword is the search term the run analyzed.
	Keyword string `json:"keyword"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// TopN is the per-article keyword cap used during extraction.
	TopN int `json:"top_n"`

	// Requested is the number of articles the caller asked for.
	Requested int `json:"requested"`

	// Collected is the number of search results actually gathered.
	// May be lower than Requested when the API runs out of results.
	Collected int `json:"collected"`

	// Skipped is the number of articles that contributed nothing, either
	// because extraction failed or because the link was not an eligible
	// article page.
	Skipped int `json:"skipped"`

	// Articles lists every collected search result in API order.
	Articles []ArticleRef `json:"articles,omitempty"`

	// Keywords is the final ranked statistic table.
	Keywords []KeywordStat `json:"keywords"`
}

// Contributed reports how many articles added at least one token to the table.
func (r *AnalysisResult) Contributed() int {
	return r.Collected - r.Skipped
}
