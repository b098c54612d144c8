package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// MarkdownWriter outputs the summary report in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables and mermaid charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...Option) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output, opts...)}
}

// Write outputs a summary table and a headcount pie chart.
func (w *MarkdownWriter) Write(stats *model.Stats) (int, error) {
	if stats.IsEmpty() {
		return 0, nil
	}

	md := markdown.NewMarkdown(w.output)

	w.writeTable(md, stats)
	w.writeTeams(md, stats)
	w.writePieChart(md, stats)

	return len(md.String()), md.Build()
}

// writeTable writes the heading and the summary table.
func (w *MarkdownWriter) writeTable(md *markdown.Markdown, stats *model.Stats) {
	md.H1(strings.TrimSuffix(w.printer.Sprintf(i18n.MsgSummaryHeading), ":\n"))
	md.PlainText("")

	rows := make([][]string, 0, stats.Len())
	for _, row := range stats.Summary() {
		rows = append(rows, []string{
			escapeCell(row.Department),
			strconv.Itoa(row.Employees),
			FormatSalary(row.MinSalary),
			FormatSalary(row.MaxSalary),
			FormatAverage(row.AverageSalary),
		})
	}

	md.Table(markdown.TableSet{
		Header: CSVHeader(),
		Rows:   rows,
	})
	md.PlainText("")
}

// writeTeams writes the teams of each department as a bullet list.
func (w *MarkdownWriter) writeTeams(md *markdown.Markdown, stats *model.Stats) {
	md.H2(strings.TrimSuffix(w.printer.Sprintf(i18n.MsgTeamsHeading), ":\n"))
	md.PlainText("")

	items := make([]string, 0, stats.Len())
	for _, d := range stats.Departments() {
		items = append(items, "**"+d.Name+"**: "+strings.Join(d.Teams(), ", "))
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of headcount per department.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, stats *model.Stats) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(w.printer.Sprintf(i18n.MsgPieChartTitle)),
		piechart.WithShowData(true),
	)

	for _, d := range stats.Departments() {
		chart.LabelAndIntValue(d.Name, uint64(d.Count)) //nolint:gosec // Count is never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// escapeCell escapes pipes so a value stays inside one table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
