package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Writer writes alerts as plain text, one headline followed by indented
// details.
type Writer struct {
	w     io.Writer
	color bool
}

// NewWriter creates a Writer. Color is used only when w is a terminal and
// noColor is false.
func NewWriter(w io.Writer, noColor bool) *Writer {
	return &Writer{w: w, color: !noColor && isTerminal(w)}
}

// Write writes one alert.
func (aw *Writer) Write(alert *Alert) error {
	headline := alert.String()
	if aw.color {
		headline = alert.Level.Color() + headline + resetColor
	}
	if _, err := fmt.Fprintln(aw.w, headline); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(aw.w, "  %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes alerts separated by blank lines.
func (aw *Writer) WriteAll(alerts ...*Alert) error {
	for i, alert := range alerts {
		if i > 0 {
			if _, err := fmt.Fprintln(aw.w); err != nil {
				return err
			}
		}
		if err := aw.Write(alert); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
