package inline

import (
	"errors"
	"io"

	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/samber/mo"
)

type Options struct {
	Out      io.Writer
	Json     bool
	Query    string
	Category catalog.Category
	// SimilarTo lists the movies similar to that id instead of searching.
	SimilarTo mo.Option[string]
	// Limit caps the result count. Zero means no cap, except for similar movies which default to catalog.DefaultSimilarLimit.
	Limit int
}

func (o *Options) validate() error {
	if o.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	if o.Category == "" {
		o.Category = catalog.CategoryAll
	}
	if _, err := catalog.ParseCategory(string(o.Category)); err != nil {
		return err
	}
	if o.SimilarTo.IsPresent() && o.Query != "" {
		return errors.New("query and similar-to are mutually exclusive")
	}
	return nil
}
