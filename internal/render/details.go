package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pixolin/wpplugin/internal/color"
	"github.com/pixolin/wpplugin/internal/directory"
)

const (
	// labelWidth fits the widest label, "Active installs".
	labelWidth = 15

	// valueWidth is the content width long values wrap at.
	valueWidth = 60
)

// lastUpdatedLayout matches the directory API's last_updated timestamps,
// e.g. "2024-05-08 2:37pm GMT".
const lastUpdatedLayout = "2006-01-02 3:04pm MST"

// tagPattern matches the HTML markup the API embeds in author fields.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// detailRow is one labeled line of the plugin detail view.
type detailRow struct {
	label string
	value string
}

// Detail renders a rounded two-column table describing a single plugin.
func Detail(p *directory.Plugin, theme color.Theme) string {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
		tablewriter.WithColumnWidths(toCellWidths(map[int]int{
			0: labelWidth,
			1: valueWidth,
		})),
	)

	for _, row := range detailRows(p) {
		label := padToWidth(theme.Label.Render(row.label), labelWidth)
		_ = t.Append([]string{label, row.value})
	}

	_ = t.Render()

	output := strings.TrimRight(buf.String(), "\n")

	return dimBorders(output, theme)
}

// DetailLines renders the same fields as plain "label: value" lines for
// non-TTY output.
func DetailLines(p *directory.Plugin) string {
	var b strings.Builder

	for _, row := range detailRows(p) {
		fmt.Fprintf(&b, "%-*s %s\n", labelWidth+1, row.label+":", row.value)
	}

	return b.String()
}

// detailRows collects the labeled fields of a plugin record, skipping
// fields the API left empty.
func detailRows(p *directory.Plugin) []detailRow {
	rows := []detailRow{
		{label: "Name", value: p.DecodedName()},
		{label: "Slug", value: p.Slug},
	}

	rows = appendRow(rows, "Version", p.Version)
	rows = appendRow(rows, "Author", stripTags(p.Author))

	if p.NumRatings > 0 {
		rows = appendRow(rows, "Rating", fmt.Sprintf(
			"%.1f / 5 (%s ratings)",
			p.StarRating(),
			humanize.Comma(int64(p.NumRatings)),
		))
	}

	if p.ActiveInstalls > 0 {
		rows = appendRow(rows, "Active installs", humanize.Comma(int64(p.ActiveInstalls))+"+")
	}

	rows = appendRow(rows, "Requires WP", p.Requires)
	rows = appendRow(rows, "Tested up to", p.Tested)
	rows = appendRow(rows, "Requires PHP", p.RequiresPHP)
	rows = appendRow(rows, "Last updated", formatLastUpdated(p.LastUpdated))
	rows = appendRow(rows, "Homepage", p.Homepage)
	rows = appendRow(rows, "Download", p.DownloadLink)
	rows = appendRow(rows, "Description", html.UnescapeString(p.ShortDescription))

	return rows
}

// appendRow adds a labeled row, skipping empty values.
func appendRow(rows []detailRow, label, value string) []detailRow {
	if value == "" {
		return rows
	}

	return append(rows, detailRow{label: label, value: value})
}

// formatLastUpdated renders the API timestamp with a relative suffix,
// e.g. "2024-05-08 (3 months ago)". Unparseable values pass through.
func formatLastUpdated(raw string) string {
	if raw == "" {
		return ""
	}

	t, err := time.Parse(lastUpdatedLayout, raw)
	if err != nil {
		return raw
	}

	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.Time(t))
}

// stripTags removes HTML markup and decodes the remaining entities.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

// toCellWidths converts content widths to cell widths (content + left/right
// padding) for WithColumnWidths. Tablewriter subtracts padding from these
// values to get the effective content wrapping width.
func toCellWidths(contentWidths map[int]int) tw.Mapper[int, int] {
	const padW = 2 // " " left + " " right

	m := make(tw.Mapper[int, int], len(contentWidths))
	for col, w := range contentWidths {
		m[col] = w + padW
	}

	return m
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to all box-drawing border
// characters in the rendered table output.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}
