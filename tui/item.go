package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/icon"
)

// listItem adapts a movie to list.Item.
type listItem struct {
	movie *catalog.Movie
}

func (t *listItem) Title() string {
	return t.movie.Title
}

func (t *listItem) Description() string {
	return fmt.Sprintf("%s %s  %s", icon.Get(icon.Time), t.movie.Duration, strings.Join(t.movie.Genre, " · "))
}

func (t *listItem) FilterValue() string {
	return t.movie.Title
}

func movieItems(movies []*catalog.Movie) []list.Item {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		items[i] = &listItem{movie: m}
	}
	return items
}

func selectedMovie(l list.Model) (*catalog.Movie, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	return item.movie, true
}
