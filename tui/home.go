package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/layout"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// cardHeight is the rendered height of a card, borders included.
const cardHeight = 4

// homeRows are the card rows of the home screen: the active category split into grid rows,
// or one row per section in TV mode.
func (b *statefulBubble) homeRows() [][]*catalog.Movie {
	if b.tvMode {
		return lo.Map(catalog.Sections(b.featured), func(s catalog.Section, _ int) []*catalog.Movie {
			return s.Movies
		})
	}
	return lo.Chunk(catalog.Filter(b.category), b.viewport().Columns(false))
}

func (b *statefulBubble) selectedHomeMovie() mo.Option[*catalog.Movie] {
	rows := b.homeRows()
	if b.row >= len(rows) || b.cursor >= len(rows[b.row]) {
		return mo.None[*catalog.Movie]()
	}
	return mo.Some(rows[b.row][b.cursor])
}

// moveHome moves the selection by rows and columns, keeping it on an existing card.
func (b *statefulBubble) moveHome(dRow, dCol int) {
	rows := b.homeRows()
	if len(rows) == 0 {
		b.row, b.cursor = 0, 0
		return
	}

	b.row = util.Clamp(b.row+dRow, 0, len(rows)-1)
	b.cursor = util.Clamp(b.cursor+dCol, 0, len(rows[b.row])-1)
}

func (b *statefulBubble) switchCategory(delta int) {
	categories := catalog.Categories()
	index := lo.IndexOf(categories, b.category)
	b.category = categories[(index+delta+len(categories))%len(categories)]
	b.backToTop()
}

func (b *statefulBubble) backToTop() {
	b.row, b.cursor = 0, 0
}

func (b *statefulBubble) viewHome() string {
	lines := []string{b.renderHeader(), ""}
	lines = append(lines, b.renderBanner()...)
	lines = append(lines, "")

	if !b.tvMode {
		lines = append(lines, b.renderTabs(), "")
	}

	used := len(lines) + lipgloss.Height(b.helpC.View(b.keymap))
	lines = append(lines, b.renderRows(util.Max(0, b.height-used))...)

	return b.renderLines(true, lines)
}

func (b *statefulBubble) renderHeader() string {
	header := style.Title(constant.Brand)
	if b.tvMode {
		header += " " + style.Tag(color.Foreground, color.Surface)(icon.Get(icon.TV)+" TV")
	}
	return header
}

// renderBanner shows the featured movie above the rows.
func (b *statefulBubble) renderBanner() []string {
	all := catalog.All()
	if len(all) == 0 {
		return nil
	}
	featured := all[0]

	width := uint(util.Max(1, b.width))
	return []string{
		style.Tag(color.Foreground, color.Danger)("Featured") + " " + style.Bold(truncate.StringWithTail(featured.Title, width, "…")),
		style.Faint(truncate.StringWithTail(featured.Description, width, "…")),
	}
}

func (b *statefulBubble) renderTabs() string {
	tabs := lo.Map(catalog.Categories(), func(c catalog.Category, _ int) string {
		if c == b.category {
			return style.Tag(color.Foreground, color.Accent)(c.Title())
		}
		return style.Tag(color.Muted, color.Surface)(c.Title())
	})
	count := util.Quantify(len(catalog.Filter(b.category)), "movie", "movies")
	return strings.Join(tabs, " ") + "  " + style.Faint(count)
}

// renderRows renders as many card rows as fit in height, scrolled so the selected row is visible.
func (b *statefulBubble) renderRows(height int) []string {
	rows := b.homeRows()
	if len(rows) == 0 {
		return []string{style.Faint("Nothing to watch here yet.")}
	}

	rowHeight := cardHeight
	var titles []string
	if b.tvMode {
		rowHeight++
		titles = lo.Map(catalog.Sections(b.featured), func(s catalog.Section, _ int) string {
			return s.Title
		})
	}

	visible := util.Max(1, height/rowHeight)
	first := util.Max(0, b.row-visible+1)
	last := util.Min(len(rows), first+visible)

	var lines []string
	for i := first; i < last; i++ {
		if b.tvMode {
			lines = append(lines, style.Bold(titles[i]))
		}
		lines = append(lines, b.renderRow(rows[i], i))
	}
	return lines
}

func (b *statefulBubble) renderRow(movies []*catalog.Movie, row int) string {
	vp := b.viewport()
	columns := vp.Columns(b.tvMode)
	width := vp.CardWidth(b.tvMode)

	// horizontal scroll within a section row
	first := 0
	if row == b.row {
		first = util.Max(0, b.cursor-columns+1)
	}
	last := util.Min(len(movies), first+columns)

	gutter := strings.Repeat(" ", layout.Gutter)
	cards := make([]string, 0, 2*(last-first))
	for i := first; i < last; i++ {
		if i > first {
			cards = append(cards, gutter)
		}
		cards = append(cards, renderCard(movies[i], width, row == b.row && i == b.cursor))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(m *catalog.Movie, width int, selected bool) string {
	inner := uint(util.Max(1, width-4))

	border := style.BorderColor
	title := truncate.StringWithTail(m.Title, inner, "…")
	if selected {
		border = style.AccentColor
		title = style.Fg(style.AccentColor)(style.Bold(title))
	}

	genres := ""
	if len(m.Genre) > 0 {
		genres = " · " + m.Genre[0]
	}
	meta := truncate.StringWithTail(fmt.Sprintf("%s %s%s", icon.Get(icon.Time), m.Duration, genres), inner, "…")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(util.Max(1, width-2)).
		Render(title + "\n" + style.Faint(meta))
}
