package catalog

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DefaultSimilarLimit caps Similar when no positive limit is given.
const DefaultSimilarLimit = 6

// Similar returns other movies sharing at least one genre with m, in catalog order, at most limit of them.
func Similar(m *Movie, limit int) []*Movie {
	if m == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	similar := lo.Filter(All(), func(other *Movie, _ int) bool {
		return other.ID != m.ID && lo.SomeBy(m.Genre, other.HasGenre)
	})

	if len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}

// Search fuzzily matches query against titles, descriptions and genres, ignoring case.
// Results are ranked by edit distance to the title; ties keep catalog order.
// An empty query returns the whole catalog.
func Search(query string) []*Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return All()
	}

	matches := lo.Filter(All(), func(m *Movie, _ int) bool {
		return fuzzy.MatchFold(query, m.Title) ||
			strings.Contains(strings.ToLower(m.Description), query) ||
			lo.SomeBy(m.Genre, func(g string) bool {
				return fuzzy.MatchFold(query, g)
			})
	})

	slices.SortStableFunc(matches, func(a, b *Movie) int {
		return levenshtein.Distance(query, strings.ToLower(a.Title)) -
			levenshtein.Distance(query, strings.ToLower(b.Title))
	})

	return matches
}
