package catalog

import (
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(movies []*Movie) []string {
	return lo.Map(movies, func(m *Movie, _ int) string { return m.ID })
}

func TestCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		all := All()

		Convey("It holds twelve movies in id order", func() {
			So(ids(all), ShouldResemble, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"})
		})

		Convey("All returns copies", func() {
			all[0].Title = "changed"
			all[0].Genre[0] = "changed"
			fresh := All()[0]
			So(fresh.Title, ShouldEqual, "Big Buck Bunny")
			So(fresh.Genre[0], ShouldEqual, "Animation")
		})

		Convey("Find resolves known ids only", func() {
			So(Find("3").MustGet().Title, ShouldEqual, "Sintel")
			So(Find("99").IsAbsent(), ShouldBeTrue)
		})

		Convey("FindByVideoURL returns the first movie sharing a video", func() {
			found := FindByVideoURL(Find("12").MustGet().VideoURL)
			So(found.MustGet().ID, ShouldEqual, "1")
			So(FindByVideoURL("https://example.com/none.mp4").IsAbsent(), ShouldBeTrue)
		})

		Convey("Genres are distinct and sorted", func() {
			genres := Genres()
			So(genres[0], ShouldEqual, "Action")
			So(genres, ShouldContain, "Documentary")
			So(len(genres), ShouldEqual, len(lo.Uniq(genres)))
		})
	})
}

func TestLength(t *testing.T) {
	Convey("Given movie durations", t, func() {
		cases := map[string]time.Duration{
			"9:56":  9*time.Minute + 56*time.Second,
			"0:60":  time.Minute,
			"14:48": 14*time.Minute + 48*time.Second,
			"0:15":  15 * time.Second,
			"":      0,
			"abc":   0,
			"1:xx":  0,
			"-1:30": 0,
		}

		for raw, want := range cases {
			m := Movie{Duration: raw}
			So(m.Length(), ShouldEqual, want)
		}
	})
}

func TestCategories(t *testing.T) {
	Convey("Given the category tabs", t, func() {
		So(Categories(), ShouldResemble, []Category{CategoryAll, CategoryAnimation, CategoryCommercial, CategoryDocumentary})

		Convey("Titles are capitalized", func() {
			So(CategoryAll.Title(), ShouldEqual, "All")
			So(CategoryDocumentary.Title(), ShouldEqual, "Documentary")
		})

		Convey("Filter narrows by genre", func() {
			So(len(Filter(CategoryAll)), ShouldEqual, 12)
			So(ids(Filter(CategoryAnimation)), ShouldResemble, []string{"1", "2", "3"})
			So(ids(Filter(CategoryCommercial)), ShouldResemble, []string{"5", "7", "8", "9", "10", "11"})
			So(ids(Filter(CategoryDocumentary)), ShouldResemble, []string{"12"})
			So(Filter(Category("horror")), ShouldBeEmpty)
		})

		Convey("ParseCategory is case insensitive", func() {
			c, err := ParseCategory(" Animation ")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, CategoryAnimation)

			_, err = ParseCategory("horror")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSections(t *testing.T) {
	Convey("Given the TV home sections", t, func() {
		sections := Sections(6)

		So(lo.Map(sections, func(s Section, _ int) string { return s.Title }), ShouldResemble,
			[]string{"Featured", "Animation", "Commercial", "Other"})

		Convey("Featured takes the first movies", func() {
			So(ids(sections[0].Movies), ShouldResemble, []string{"1", "2", "3", "4", "5", "6"})
		})

		Convey("Other holds what is neither animation nor commercial", func() {
			So(ids(sections[3].Movies), ShouldResemble, []string{"4", "6", "12"})
		})

		Convey("An empty featured row is dropped", func() {
			So(Sections(0)[0].Title, ShouldEqual, "Animation")
			So(len(Featured(100)), ShouldEqual, 12)
		})
	})
}

func TestSimilar(t *testing.T) {
	Convey("Given a commercial", t, func() {
		blazes := Find("7").MustGet()

		Convey("Similar lists other commercials, excluding itself, capped at the limit", func() {
			So(ids(Similar(blazes, 6)), ShouldResemble, []string{"5", "8", "9", "10", "11"})
			So(ids(Similar(blazes, 2)), ShouldResemble, []string{"5", "8"})
		})

		Convey("A non-positive limit falls back to the default", func() {
			So(len(Similar(blazes, 0)), ShouldEqual, 5)
		})
	})

	Convey("Given a movie sharing no genre", t, func() {
		So(Similar(Find("6").MustGet(), 6), ShouldBeEmpty)
		So(Similar(nil, 6), ShouldBeEmpty)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given search queries", t, func() {
		Convey("An empty query returns everything", func() {
			So(len(Search("  ")), ShouldEqual, 12)
		})

		Convey("Title matches rank by closeness", func() {
			results := Search("sintel")
			So(results[0].ID, ShouldEqual, "3")
		})

		Convey("Genres and descriptions match too", func() {
			So(ids(Search("documentary")), ShouldContain, "12")
			So(ids(Search("dragon")), ShouldContain, "3")
		})

		Convey("Nonsense matches nothing", func() {
			So(Search("zzzzqqq"), ShouldBeEmpty)
		})
	})
}
