// Package render writes the assembled report to the output stream.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/3pl/internal/core/domain"
	"go.trai.ch/3pl/internal/core/ports"
	"go.trai.ch/zerr"
)

// delimiter frames every section header, matching the output of other
// cargo commands that print license summaries.
var delimiter = strings.Repeat("=", 80)

var _ ports.Renderer = (*Writer)(nil)

// Writer implements ports.Renderer against an io.Writer. License file
// content is read here, at the last possible moment, so the rest of the
// pipeline only ever handles paths.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer for the given stream.
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out}
}

// Render writes the sections in order. The first section starts the
// report; every later section is preceded by a blank line. A section
// referencing a file ends with a newline even when the file's content
// does not, so consecutive licenses stay visually separated.
func (w *Writer) Render(sections []domain.Section) error {
	for i, section := range sections {
		if i > 0 {
			if err := w.print("\n"); err != nil {
				return err
			}
		}
		if err := w.printHeader(section.Header); err != nil {
			return err
		}

		for _, line := range section.Lines {
			if err := w.print(line + "\n"); err != nil {
				return err
			}
		}

		if section.File == "" {
			continue
		}
		if err := w.printFile(section.File); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) printHeader(header string) error {
	return w.print(fmt.Sprintf("%s\n%s\n%s\n", delimiter, header, delimiter))
}

// printFile copies the file's raw bytes after a separating blank line.
// The file existed at resolution time; a failure here means it vanished
// or became unreadable since, which is fatal.
func (w *Writer) printFile(path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path was discovered by the scanner
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLicenseFileRead, "failed to read license file"), "path", path)
	}

	if err := w.print("\n"); err != nil {
		return err
	}
	if _, err := w.out.Write(content); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write report"), "path", path)
	}
	if !bytes.HasSuffix(content, []byte("\n")) {
		return w.print("\n")
	}
	return nil
}

func (w *Writer) print(s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}
