// Package selector implements the paginated plugin selection loop.
package selector

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-runewidth"

	"github.com/pixolin/wpplugin/internal/directory"
	"github.com/pixolin/wpplugin/internal/prompt"
	"github.com/pixolin/wpplugin/pkg/logger"
)

const (
	defaultPageSize = 10

	// maxNameWidth is the display width a listed plugin name may occupy
	// before it is truncated.
	maxNameWidth = 60

	promptWithNext = "Enter plugin number or press enter for first match. " +
		"Enter [n] for next 10 plugins, enter [q] to abort.\n\n"

	promptFinal = "Enter plugin number or press enter for first match. " +
		"Enter [q] to abort.\n\n"

	invalidInputNotice = "Invalid input, please try again. \n\n"

	noMoreResultsNotice = "No more results."
)

var (
	// ErrAborted is returned when the user quits the selection.
	ErrAborted = errors.New("selection aborted")

	// ErrNoPlugins is returned when there is nothing to select from.
	ErrNoPlugins = errors.New("no plugins to select")
)

// Selector resolves a user's choice from a plugin list, ten entries at a
// time. It owns no state between runs.
type Selector struct {
	prompter prompt.Prompter
	writer   io.Writer
	pageSize int
	logger   logger.Logger
}

// New creates a Selector. A non-positive pageSize selects the default of
// ten entries per page, a nil log disables logging.
func New(prompter prompt.Prompter, writer io.Writer, pageSize int, log logger.Logger) *Selector {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Selector{
		prompter: prompter,
		writer:   writer,
		pageSize: pageSize,
		logger:   log,
	}
}

// Run displays the first page and loops over user input until a selection
// is made or the user aborts. The returned index is zero-based into the
// full plugin list.
func (s *Selector) Run(plugins []directory.Plugin) (int, error) {
	if len(plugins) == 0 {
		return 0, ErrNoPlugins
	}

	start := 0
	fmt.Fprintln(s.writer, FormatPage(plugins, start, start+s.pageSize))

	for {
		line, err := s.prompter.ReadLine(s.promptText(len(plugins), start))
		if err != nil {
			s.logger.Debug("prompt read failed", "error", err)

			return 0, ErrAborted
		}

		input := strings.ToLower(line)

		switch input {
		case "":
			return 0, nil

		case "q":
			return 0, ErrAborted

		case "n":
			if start+s.pageSize >= len(plugins) {
				fmt.Fprintln(s.writer, noMoreResultsNotice)

				continue
			}

			start += s.pageSize
			s.logger.Debug("window advanced", "start", start)
			fmt.Fprintln(s.writer, FormatPage(plugins, start, start+s.pageSize))

		default:
			if ordinal, ok := parseOrdinal(input, len(plugins)); ok {
				return ordinal - 1, nil
			}

			fmt.Fprint(s.writer, invalidInputNotice)
		}
	}
}

// promptText returns the instruction text for the current window. The "n"
// instruction is omitted once a further page would run past the end.
func (s *Selector) promptText(total, start int) string {
	if start+s.pageSize >= total {
		return promptFinal
	}

	return promptWithNext
}

// parseOrdinal interprets input as a 1-based plugin ordinal. Only plain
// decimal digit strings within [1, total] are accepted.
func parseOrdinal(input string, total int) (int, bool) {
	if input == "" {
		return 0, false
	}

	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	ordinal, err := strconv.Atoi(input)
	if err != nil || ordinal < 1 || ordinal > total {
		return 0, false
	}

	return ordinal, true
}

// FormatPage renders the entries in [start, stop) as numbered lines, one
// plugin per line. Indices past the end of the list yield no lines.
func FormatPage(plugins []directory.Plugin, start, stop int) string {
	var b strings.Builder

	b.WriteString("\n")

	for i := start; i < stop && i < len(plugins); i++ {
		fmt.Fprintf(&b, "%2d %s\n", i+1, DisplayName(&plugins[i]))
	}

	return b.String()
}

// DisplayName decodes HTML entities and truncates long names to
// maxNameWidth display cells with an ellipsis marker.
func DisplayName(p *directory.Plugin) string {
	name := p.DecodedName()
	if runewidth.StringWidth(name) <= maxNameWidth {
		return name
	}

	return runewidth.Truncate(name, maxNameWidth, "") + " …"
}
