package aggregate

import (
	"sort"

	"github.com/newslens/newslens/internal/model"
)

// Table accumulates per-article keyword selections into cross-article
// statistics. One Table belongs to exactly one analysis run; under the
// sequential pipeline no locking is needed, and the concurrent pipeline
// serializes folds through a single consumer.
type Table struct {
	entries map[string]*entry
}

// entry is the mutable per-token state during aggregation.
type entry struct {
	stat model.KeywordStat

	// firstPos and firstRank locate the token's earliest appearance:
	// the search-result position of the first contributing article and the
	// token's rank within that article's selection. Together they define
	// the deterministic tie-break order, independent of fold timing.
	firstPos  int
	firstRank int
}

// NewTable creates an empty aggregation table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Len returns the number of distinct tokens in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// FoldIn merges one article's keyword selection into the table.
//
// Each token gains exactly 1 on its article-occurrence count regardless of
// its in-article frequency, and its full in-article count on the total
// frequency. position is the contributing article's index in the original
// search-result order; folding the same selections in any order produces
// the same final ranking.
func (t *Table) FoldIn(position int, keywords model.ArticleKeywords) {
	for rank, tc := range keywords {
		e, ok := t.entries[tc.Token]
		if !ok {
			e = &entry{
				stat:      model.KeywordStat{Token: tc.Token},
				firstPos:  position,
				firstRank: rank,
			}
			t.entries[tc.Token] = e
		} else if position < e.firstPos || (position == e.firstPos && rank < e.firstRank) {
			e.firstPos = position
			e.firstRank = rank
		}

		e.stat.ArticleCount++
		e.stat.TotalFrequency += tc.Count
	}
}

// Rank returns the final ordering: descending article-occurrence count,
// then descending total frequency, then first-seen order across the
// article stream. The table itself is left untouched and may be ranked
// again after further folds.
func (t *Table) Rank() []model.KeywordStat {
	ranked := make([]*entry, 0, len(t.entries))
	for _, e := range t.entries {
		ranked = append(ranked, e)
	}

	sort.Slice(ranked, func(a, b int) bool {
		ea, eb := ranked[a], ranked[b]
		if ea.stat.ArticleCount != eb.stat.ArticleCount {
			return ea.stat.ArticleCount > eb.stat.ArticleCount
		}
		if ea.stat.TotalFrequency != eb.stat.TotalFrequency {
			return ea.stat.TotalFrequency > eb.stat.TotalFrequency
		}
		if ea.firstPos != eb.firstPos {
			return ea.firstPos < eb.firstPos
		}
		return ea.firstRank < eb.firstRank
	})

	stats := make([]model.KeywordStat, len(ranked))
	for i, e := range ranked {
		stats[i] = e.stat
	}
	return stats
}
