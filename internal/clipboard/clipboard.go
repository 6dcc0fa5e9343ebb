// Package clipboard delivers rendered links to the system clipboard.
package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"

	"github.com/pixolin/wpplugin/pkg/logger"
)

// ErrUnavailable is returned when no clipboard utility is usable.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier defines the interface for clipboard writes.
type Copier interface {
	// Copy places text on the system clipboard.
	Copy(text string) error
}

// SystemCopier writes through the platform clipboard utility.
type SystemCopier struct{}

// NewSystemCopier creates a SystemCopier.
func NewSystemCopier() *SystemCopier {
	return &SystemCopier{}
}

// Copy places text on the system clipboard.
func (*SystemCopier) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}

	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "writing to clipboard")
	}

	return nil
}

// Sink copies a link to the clipboard and reports the outcome to the user.
// Clipboard failure is the one recoverable fault: the link is printed for
// manual copying instead and the process still succeeds.
type Sink struct {
	copier Copier
	writer io.Writer
	logger logger.Logger
}

// NewSink creates a Sink. A nil copier disables the clipboard entirely,
// a nil log disables logging.
func NewSink(copier Copier, writer io.Writer, log logger.Logger) *Sink {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Sink{
		copier: copier,
		writer: writer,
		logger: log,
	}
}

// Deliver places the link on the clipboard and prints a confirmation,
// falling back to a plain printout when the clipboard is unavailable.
func (s *Sink) Deliver(link string) {
	if s.copier == nil {
		s.printFallback(link)

		return
	}

	if err := s.copier.Copy(link); err != nil {
		s.logger.Debug("clipboard copy failed", "error", err)
		s.printFallback(link)

		return
	}

	fmt.Fprintf(s.writer, "Copied to your clipboard:\n%s\n", link)
}

func (s *Sink) printFallback(link string) {
	fmt.Fprintf(s.writer, "Copy:\n\n%s\n\n", link)
}
