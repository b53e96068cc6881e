package catalog

import (
	"fmt"
	"strings"

	"github.com/movieflix-cli/movieflix/util"
	"github.com/samber/lo"
)

// Category is a home screen tab.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryAnimation   Category = "animation"
	CategoryCommercial  Category = "commercial"
	CategoryDocumentary Category = "documentary"
)

// Categories returns the tabs in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryAnimation, CategoryCommercial, CategoryDocumentary}
}

// ParseCategory accepts a category name in any case.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == strings.ToLower(strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q, expected one of %v", name, Categories())
}

// Title is the tab label.
func (c Category) Title() string {
	if c == CategoryAll {
		return "All"
	}
	return util.Capitalize(string(c))
}

func (c Category) genre() string {
	return util.Capitalize(string(c))
}

// Filter returns the movies in c, in catalog order. Unknown categories yield nothing.
func Filter(c Category) []*Movie {
	switch c {
	case CategoryAll:
		return All()
	case CategoryAnimation, CategoryCommercial, CategoryDocumentary:
		return lo.Filter(All(), func(m *Movie, _ int) bool {
			return m.HasGenre(c.genre())
		})
	default:
		return nil
	}
}

// Section is a titled home screen row.
type Section struct {
	Title  string
	Movies []*Movie
}

// Sections groups the catalog into the TV home rows: the first featured movies,
// then animation, commercial, and everything else.
// Empty rows are omitted.
func Sections(featured int) []Section {
	all := All()

	other := lo.Filter(all, func(m *Movie, _ int) bool {
		return !m.HasGenre(CategoryAnimation.genre()) && !m.HasGenre(CategoryCommercial.genre())
	})

	sections := []Section{
		{Title: "Featured", Movies: Featured(featured)},
		{Title: "Animation", Movies: Filter(CategoryAnimation)},
		{Title: "Commercial", Movies: Filter(CategoryCommercial)},
		{Title: "Other", Movies: other},
	}

	return lo.Filter(sections, func(s Section, _ int) bool {
		return len(s.Movies) > 0
	})
}

// Featured returns the first n movies. Non-positive n yields nothing.
func Featured(n int) []*Movie {
	all := All()
	return all[:util.Clamp(n, 0, len(all))]
}
