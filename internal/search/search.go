// Package search ranks flattened documentation records against free-text
// queries. Matching is delegated to a third-party fuzzy matcher; this package
// only prepares its inputs and combines the per-field scores.
package search

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/griffedoc/griffedoc/internal/index"
)

// DefaultMinQueryLength is the query length below which no search runs.
const DefaultMinQueryLength = 2

// DefaultLimit is the result cap when the caller does not supply one.
const DefaultLimit = 20

// nameWeight makes a hit on the record name count double a hit on the
// summary text.
const nameWeight = 2

// Searcher matches queries against a fixed record set. It is immutable after
// construction and safe for concurrent use.
type Searcher struct {
	records   []index.SearchRecord
	names     []string
	summaries []string
	minQuery  int
	limit     int
}

// Result is one ranked search hit.
type Result struct {
	index.SearchRecord
	Score int `json:"score"`
}

// New builds a searcher over records. Non-positive minQuery or limit fall
// back to the defaults.
func New(records []index.SearchRecord, minQuery, limit int) *Searcher {
	if minQuery <= 0 {
		minQuery = DefaultMinQueryLength
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	names := make([]string, len(records))
	summaries := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
		summaries[i] = r.Summary
	}
	return &Searcher{
		records:   records,
		names:     names,
		summaries: summaries,
		minQuery:  minQuery,
		limit:     limit,
	}
}

// Search returns up to limit records ranked for query, optionally restricted
// to one package. Queries shorter than the minimum length return nothing.
func (s *Searcher) Search(query, pkg string, limit int) []Result {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minQuery {
		return nil
	}
	if limit <= 0 {
		limit = s.limit
	}

	scores := make(map[int]int)
	for _, m := range fuzzy.Find(query, s.names) {
		scores[m.Index] = nameWeight * m.Score
	}
	for _, m := range fuzzy.Find(query, s.summaries) {
		if prev, ok := scores[m.Index]; ok {
			scores[m.Index] = prev + m.Score
		} else {
			scores[m.Index] = m.Score
		}
	}

	results := make([]Result, 0, len(scores))
	for i, score := range scores {
		if pkg != "" && s.records[i].Package != pkg {
			continue
		}
		results = append(results, Result{SearchRecord: s.records[i], Score: score})
	}

	// Stable order: score first, then lexicographic path for ties.
	sort.Slice(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Path < results[b].Path
	})
	if len(results) > limit {
		results = results[:limit]
	}

	slog.Debug("search", "query", query, "package", pkg, "results", len(results))
	return results
}
