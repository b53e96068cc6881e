// Package catalog holds the built-in movie library and the queries the screens run over it.
package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Movie is a catalog entry. Duration is the display length in M:SS form.
type Movie struct {
	ID          string   `json:"id" jsonschema:"description=Catalog identifier"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail" jsonschema:"description=Poster image URL"`
	VideoURL    string   `json:"videoUrl" jsonschema:"description=Progressive media URL handed to the engine"`
	Duration    string   `json:"duration" jsonschema:"example=9:56"`
	Genre       []string `json:"genre"`
}

// Length parses Duration. Seconds are not bounded, so "0:60" is one minute. Malformed values yield 0.
func (m *Movie) Length() time.Duration {
	minutes, seconds, ok := strings.Cut(m.Duration, ":")
	if !ok {
		return 0
	}

	mm, err := strconv.Atoi(minutes)
	if err != nil || mm < 0 {
		return 0
	}
	ss, err := strconv.Atoi(seconds)
	if err != nil || ss < 0 {
		return 0
	}

	return time.Duration(mm)*time.Minute + time.Duration(ss)*time.Second
}

// HasGenre reports whether the movie is tagged with genre, ignoring case.
func (m *Movie) HasGenre(genre string) bool {
	return lo.ContainsBy(m.Genre, func(g string) bool {
		return strings.EqualFold(g, genre)
	})
}

// String returns the title.
func (m *Movie) String() string {
	return m.Title
}

// All returns every movie in catalog order. The slice and the movies are copies.
func All() []*Movie {
	return lo.Map(movies, func(m Movie, _ int) *Movie {
		c := m
		c.Genre = append([]string(nil), m.Genre...)
		return &c
	})
}

// Find looks a movie up by ID.
func Find(id string) mo.Option[*Movie] {
	found, ok := lo.Find(All(), func(m *Movie) bool {
		return m.ID == id
	})
	if !ok {
		return mo.None[*Movie]()
	}
	return mo.Some(found)
}

// FindByVideoURL returns the first movie streaming from url. Several movies may share a video.
func FindByVideoURL(url string) mo.Option[*Movie] {
	found, ok := lo.Find(All(), func(m *Movie) bool {
		return m.VideoURL == url
	})
	if !ok {
		return mo.None[*Movie]()
	}
	return mo.Some(found)
}

// Genres returns the distinct genres, sorted.
func Genres() []string {
	genres := lo.Uniq(lo.FlatMap(movies, func(m Movie, _ int) []string {
		return m.Genre
	}))
	slices.Sort(genres)
	return genres
}
