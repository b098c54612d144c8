package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// TextWriter outputs the human-readable summary report.
// This format is designed for terminal display.
//
// Design decision: We use plain text without ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...Option) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output, opts...)}
}

// Write outputs one block per department: name, headcount, raw minimum
// and maximum salary, and the average rounded to two decimals.
func (w *TextWriter) Write(stats *model.Stats) (int, error) {
	if stats.IsEmpty() {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(w.printer.Sprintf(i18n.MsgSummaryHeading))
	sb.WriteString("\n")

	for _, row := range stats.Summary() {
		w.writeDepartment(&sb, row)
	}

	return io.WriteString(w.output, sb.String())
}

// writeDepartment writes a single department block.
func (w *TextWriter) writeDepartment(sb *strings.Builder, row model.SummaryRow) {
	sb.WriteString(row.Department)
	sb.WriteString(":\n")
	sb.WriteString(w.printer.Sprintf(i18n.MsgEmployeeCount, strconv.Itoa(row.Employees)))
	sb.WriteString(w.printer.Sprintf(i18n.MsgMinSalary, FormatSalary(row.MinSalary)))
	sb.WriteString(w.printer.Sprintf(i18n.MsgMaxSalary, FormatSalary(row.MaxSalary)))
	sb.WriteString(w.printer.Sprintf(i18n.MsgAverageSalary, FormatAverage(row.AverageSalary)))
	sb.WriteString("\n")
}
