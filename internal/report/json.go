package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/deptreport/internal/model"
)

// JSONWriter outputs the summary report as a JSON array of rows.
// This format is designed for tool integration and programmatic processing.
//
// An empty Stats is written as "[]" so the output always parses.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs stats.Summary() in JSON format.
func (w *JSONWriter) Write(stats *model.Stats) (int, error) {
	rows := stats.Summary()

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(rows, "", w.indentString)
	} else {
		data, err = json.Marshal(rows)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
