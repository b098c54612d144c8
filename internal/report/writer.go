package report

import (
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// Writer defines the interface for rendering department statistics.
// Implementations must treat stats as read-only.
type Writer interface {
	// Write renders stats to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(stats *model.Stats) (int, error)
}

// MultiWriter writes to multiple Writers in order.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs stats to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(stats *model.Stats) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(stats)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Option configures the language of a writer.
type Option func(*baseWriter)

// WithLanguage selects the language of headings and labels.
// The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(b *baseWriter) {
		b.printer = i18n.NewPrinter(tag)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output  io.Writer
	printer *message.Printer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer, opts ...Option) baseWriter {
	b := baseWriter{
		output:  output,
		printer: i18n.NewPrinter(i18n.English),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// FormatSalary renders a raw salary with the shortest exact representation.
func FormatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAverage renders an average salary with exactly two decimals.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
