package render_test

// Tests are run as part of Render Suite from render_test.go.

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pixolin/wpplugin/internal/color"
	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/render"
)

var _ = Describe("Detail", func() {
	akismet := &directory.Plugin{
		Name:             "Akismet Anti-spam: Spam Protection",
		Slug:             "akismet",
		Version:          "5.3.2",
		Author:           `<a href="https://automattic.com/wordpress-plugins/">Automattic</a>`,
		Requires:         "5.8",
		Tested:           "6.5.3",
		RequiresPHP:      "5.6.20",
		Rating:           92,
		NumRatings:       1234,
		ActiveInstalls:   5000000,
		LastUpdated:      "2024-05-08 2:37pm GMT",
		Homepage:         "https://akismet.com/",
		ShortDescription: "The best anti-spam protection to block spam comments &amp; spam.",
	}

	Describe("DetailLines", func() {
		It("renders labeled lines for every populated field", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("Name:"))
			Expect(out).To(ContainSubstring("Akismet Anti-spam: Spam Protection"))
			Expect(out).To(ContainSubstring("Slug:"))
			Expect(out).To(ContainSubstring("akismet"))
			Expect(out).To(ContainSubstring("Version:"))
			Expect(out).To(ContainSubstring("5.3.2"))
		})

		It("skips fields the API left empty", func() {
			out := render.DetailLines(&directory.Plugin{Name: "Bare", Slug: "bare"})

			Expect(out).NotTo(ContainSubstring("Homepage:"))
			Expect(out).NotTo(ContainSubstring("Rating:"))
			Expect(out).NotTo(ContainSubstring("Active installs:"))
		})

		It("strips HTML markup from the author", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("Author:"))
			Expect(out).To(ContainSubstring("Automattic"))
			Expect(out).NotTo(ContainSubstring("<a href"))
		})

		It("converts the rating to a five-star scale", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("4.6 / 5 (1,234 ratings)"))
		})

		It("humanizes the install count", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("5,000,000+"))
		})

		It("renders the update date with a relative suffix", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("Last updated:"))
			Expect(out).To(ContainSubstring("2024-05-08 ("))
		})

		It("passes an unparseable update date through", func() {
			p := &directory.Plugin{Name: "Odd", Slug: "odd", LastUpdated: "yesterday-ish"}

			out := render.DetailLines(p)

			Expect(out).To(ContainSubstring("yesterday-ish"))
		})

		It("decodes entities in the description", func() {
			out := render.DetailLines(akismet)

			Expect(out).To(ContainSubstring("comments & spam"))
			Expect(out).NotTo(ContainSubstring("&amp;"))
		})
	})

	Describe("Detail", func() {
		It("renders a rounded table", func() {
			out := render.Detail(akismet, color.NewTheme(false))

			Expect(out).To(ContainSubstring("╭"))
			Expect(out).To(ContainSubstring("╰"))
			Expect(out).To(ContainSubstring("Akismet Anti-spam: Spam Protection"))
		})

		It("keeps every populated label", func() {
			out := render.Detail(akismet, color.NewTheme(false))

			for _, label := range []string{
				"Name", "Slug", "Version", "Author", "Rating",
				"Active installs", "Tested up to", "Last updated",
			} {
				Expect(out).To(ContainSubstring(label), "missing label %q", label)
			}
		})

		It("contains no ANSI codes without color", func() {
			out := render.Detail(akismet, color.NewTheme(false))

			Expect(out).NotTo(ContainSubstring("\x1b["))
		})

		It("wraps long descriptions instead of widening the table", func() {
			p := &directory.Plugin{
				Name:             "Wordy",
				Slug:             "wordy",
				ShortDescription: strings.Repeat("lorem ipsum ", 20),
			}

			out := render.Detail(p, color.NewTheme(false))

			for _, line := range strings.Split(out, "\n") {
				Expect(len([]rune(line))).To(BeNumerically("<=", 90))
			}
		})
	})
})
