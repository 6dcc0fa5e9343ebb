// Package render formats plugin directory links.
package render

import (
	"fmt"

	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/pkg/config"
)

// Link renders a link to the plugin's directory page in the given format.
// The plugin name is HTML-entity-decoded and never truncated. The base URL
// must end with a slash; the plugin slug and a trailing slash are appended.
func Link(p *directory.Plugin, format config.Format, base string) string {
	name := p.DecodedName()
	url := base + p.Slug + "/"

	switch format {
	case config.FormatMarkdown:
		return fmt.Sprintf("[%s](%s)", name, url)

	case config.FormatBBCode:
		return fmt.Sprintf("[url=%s]%s[/url]", url, name)

	case config.FormatPlain:
		return url

	default:
		return fmt.Sprintf(`<a href="%s">%s</a>`, url, name)
	}
}
