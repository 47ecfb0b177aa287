package model

import "time"

// ArticleRef is a single item from the news search API.
// It carries everything needed to fetch and display the article, plus the
// item's position in the overall search-result order.
//
// Design decision: We record Position explicitly rather than relying on slice
// order because concurrent extraction completes out of order. Ranking
// tie-breaks key off Position so the final ordering stays deterministic no
// matter how many workers run.
type ArticleRef struct {
	// Position is the zero-based index of this item across all search pages.
	Position int `json:"position"`

	// Title is the article headline with markup and entities already removed.
	Title string `json:"title"`

	// Link is the URL the search API points readers at. Only links on the
	// publisher's article host are eligible for keyword extraction.
	Link string `json:"link"`

	// OriginalLink is the press site's own URL for the article, when the
	// API provides one.
	OriginalLink string `json:"original_link,omitempty"`

	// PublishedAt is the article publication time. Zero if the API sent a
	// date we could not parse.
	PublishedAt time.Time `json:"published_at"`
}

// TokenCount pairs a token with its occurrence count inside one article.
type TokenCount struct {
	// Token is the normalized word.
	Token string `json:"token"`

	// Count is how often the token occurred in the article body.
	Count int `json:"count"`
}

// ArticleKeywords is one article's top-N keyword selection in truncation
// rank order: descending count, ties by first occurrence in the article.
// An empty selection means the article contributed nothing, which is how
// recoverable per-article failures are absorbed.
//
// Design decision: This is an ordered slice rather than a map because the
// aggregation tie-break needs each token's rank within its first
// contributing article. A map would erase that order and make the final
// ranking depend on fold timing.
type ArticleKeywords []TokenCount

// Counts returns the selection as a token-to-count map.
func (k ArticleKeywords) Counts() KeywordCounts {
	m := make(KeywordCounts, len(k))
	for _, tc := range k {
		m[tc.Token] = tc.Count
	}
	return m
}

// KeywordCounts maps a token to its occurrence count within a single
// article's top-N selection.
type KeywordCounts map[string]int
