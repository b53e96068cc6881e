// Package query keeps the search query history that feeds the search screen's suggestions.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

type historyStore interface {
	Get() (map[string]*queryRecord, bool, error)
	Set(map[string]*queryRecord) error
}

var (
	mu       sync.Mutex
	cacher   historyStore
	memoized = make(map[string][]string)
)

// store opens the history file on first use so the path resolves against the active filesystem.
func store() historyStore {
	if cacher == nil {
		cacher = gache.New[map[string]*queryRecord](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return cacher
}

func load() map[string]*queryRecord {
	cached, expired, err := store().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember records q, or raises its rank by weight when it was searched before. Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" || !viper.GetBool(key.SearchQuerySuggestions) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if record, ok := records[q]; ok {
		record.Rank += weight
	} else {
		records[q] = &queryRecord{Rank: weight, Query: q}
	}

	memoized = make(map[string][]string)
	return store().Set(records)
}

// SuggestMany returns remembered queries fuzzily matching q, most searched first.
// An empty q yields the whole history.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := memoized[q]; ok {
		return prev
	}

	records := lo.Filter(lo.Values(load()), func(r *queryRecord, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})
	slices.SortFunc(records, func(a, b *queryRecord) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	suggestions := lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
	memoized[q] = suggestions
	return suggestions
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
