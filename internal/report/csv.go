package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// DefaultCSVPath is where the summary report is saved unless configured otherwise.
const DefaultCSVPath = "department_report.csv"

// CSVHeader returns the column names of the saved summary report.
func CSVHeader() []string {
	return []string{
		"Department",
		"Number of Employees",
		"Minimum Salary",
		"Maximum Salary",
		"Average Salary",
	}
}

// CSVWriter outputs the summary report as comma-separated values.
// The header row is always written, even for an empty Stats.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the header and one record per department.
func (w *CSVWriter) Write(stats *model.Stats) (int, error) {
	return w.WriteRows(stats.Summary())
}

// WriteRows outputs the header and the given summary rows.
func (w *CSVWriter) WriteRows(rows []model.SummaryRow) (int, error) {
	cw := &countingWriter{w: w.output}
	writer := csv.NewWriter(cw)

	if err := writer.Write(CSVHeader()); err != nil {
		return cw.n, fmt.Errorf("csv: write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Department,
			strconv.Itoa(row.Employees),
			FormatSalary(row.MinSalary),
			FormatSalary(row.MaxSalary),
			FormatAverage(row.AverageSalary),
		}
		if err := writer.Write(record); err != nil {
			return cw.n, fmt.Errorf("csv: write row: %w", err)
		}
	}

	writer.Flush()
	return cw.n, writer.Error()
}

// countingWriter counts bytes passed to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// CSVPersister saves the summary report to a file and confirms it to the user.
//
// The target is overwritten without confirmation. Failures are returned to
// the caller as they are; nothing is retried.
type CSVPersister struct {
	baseWriter

	// path is the destination file.
	path string
}

// NewCSVPersister creates a persister writing to path. The confirmation
// message goes to confirm. An empty path selects DefaultCSVPath.
func NewCSVPersister(path string, confirm io.Writer, opts ...Option) *CSVPersister {
	if path == "" {
		path = DefaultCSVPath
	}
	return &CSVPersister{
		baseWriter: newBaseWriter(confirm, opts...),
		path:       path,
	}
}

// Path returns the destination file.
func (p *CSVPersister) Path() string {
	return p.path
}

// Persist writes the summary report to the destination file.
func (p *CSVPersister) Persist(stats *model.Stats) error {
	dir := filepath.Dir(p.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Salary data is personal; keep the file readable by the owner only.
	f, err := os.OpenFile(p.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := NewCSVWriter(f).Write(stats); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", p.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", p.path, err)
	}

	p.printer.Fprintf(p.output, i18n.MsgReportSaved, p.path)
	return nil
}
