// Package inline prints catalog queries for scripts: tab separated lines or a JSON document.
package inline

import (
	"fmt"
	"os"
	"strings"

	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/samber/lo"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if err := options.validate(); err != nil {
		return err
	}

	movies, err := query(options)
	if err != nil {
		return err
	}
	log.Infof("inline: %d results for query=%q category=%s", len(movies), options.Query, options.Category)

	if options.Json {
		return writeJson(options.Out, movies, options)
	}

	for _, m := range movies {
		if _, err := fmt.Fprintln(options.Out, strings.Join([]string{m.ID, m.Title, m.Duration, strings.Join(m.Genre, ",")}, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func query(options *Options) ([]*catalog.Movie, error) {
	var movies []*catalog.Movie

	if id, ok := options.SimilarTo.Get(); ok {
		m, found := catalog.Find(id).Get()
		if !found {
			return nil, fmt.Errorf("movie not found: %q", id)
		}
		movies = catalog.Similar(m, options.Limit)
	} else {
		movies = catalog.Search(options.Query)
	}

	if options.Category != catalog.CategoryAll {
		inCategory := lo.SliceToMap(catalog.Filter(options.Category), func(m *catalog.Movie) (string, struct{}) {
			return m.ID, struct{}{}
		})
		movies = lo.Filter(movies, func(m *catalog.Movie, _ int) bool {
			_, ok := inCategory[m.ID]
			return ok
		})
	}

	if options.Limit > 0 && len(movies) > options.Limit {
		movies = movies[:options.Limit]
	}
	return movies, nil
}
