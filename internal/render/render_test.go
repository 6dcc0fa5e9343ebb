package render_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/render"
	"github.com/pixolin/wpplugin/pkg/config"
)

func TestRender(t *testing.T) {
	t.Parallel()
	RegisterFailHandler(Fail)
	RunSpecs(t, "Render Suite")
}

const base = "https://de.wordpress.org/plugins/"

var _ = Describe("Link", func() {
	akismet := &directory.Plugin{Name: "Akismet", Slug: "akismet"}

	It("renders an HTML anchor by default", func() {
		link := render.Link(akismet, config.FormatHTML, base)

		Expect(link).To(Equal(`<a href="https://de.wordpress.org/plugins/akismet/">Akismet</a>`))
	})

	It("falls back to HTML for the unknown format", func() {
		link := render.Link(akismet, config.FormatUnknown, base)

		Expect(link).To(ContainSubstring(`<a href="`))
	})

	It("renders a Markdown link", func() {
		link := render.Link(akismet, config.FormatMarkdown, base)

		Expect(link).To(Equal("[Akismet](https://de.wordpress.org/plugins/akismet/)"))
	})

	It("renders a BBCode link", func() {
		link := render.Link(akismet, config.FormatBBCode, base)

		Expect(link).To(Equal("[url=https://de.wordpress.org/plugins/akismet/]Akismet[/url]"))
	})

	It("renders the bare URL as plain format", func() {
		link := render.Link(akismet, config.FormatPlain, base)

		Expect(link).To(Equal("https://de.wordpress.org/plugins/akismet/"))
	})

	It("decodes HTML entities in the anchor text", func() {
		p := &directory.Plugin{Name: "Forms &amp; Surveys", Slug: "forms-surveys"}

		link := render.Link(p, config.FormatHTML, base)

		Expect(link).To(ContainSubstring(">Forms & Surveys</a>"))
		Expect(link).NotTo(ContainSubstring("&amp;"))
	})

	It("never truncates long names", func() {
		longName := strings.Repeat("x", 80)
		p := &directory.Plugin{Name: longName, Slug: "long"}

		link := render.Link(p, config.FormatHTML, base)

		Expect(link).To(ContainSubstring(">" + longName + "</a>"))
	})

	It("respects an alternate base URL", func() {
		link := render.Link(akismet, config.FormatPlain, "https://fr.wordpress.org/plugins/")

		Expect(link).To(Equal("https://fr.wordpress.org/plugins/akismet/"))
	})
})
