package aggregate

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/deptreport/internal/loader"
	"github.com/nao1215/deptreport/internal/model"
)

// options configures Build and BuildDepartmentStats.
type options struct {
	layout    model.Layout
	delimiter rune
	logger    *slog.Logger
}

// Option configures the aggregation.
type Option func(*options)

// WithLayout sets the column layout. The default is model.DefaultLayout().
func WithLayout(l model.Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithDelimiter sets the field separator used by BuildDepartmentStats.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		layout:    model.DefaultLayout(),
		delimiter: loader.DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// BuildDepartmentStats loads the file at path and aggregates it.
// It is the single entry point the reporters' callers need.
func BuildDepartmentStats(path string, opts ...Option) (*model.Stats, error) {
	o := newOptions(opts)

	rows, err := loader.Load(path, loader.WithDelimiter(o.delimiter))
	if err != nil {
		return nil, err
	}

	stats, err := Build(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", path, err)
	}

	o.logger.Info("aggregated input",
		"path", path,
		"rows", len(rows),
		"departments", stats.Len(),
	)
	return stats, nil
}

// Build aggregates rows by department. rows[0] is the header and is skipped.
//
// The returned Stats is complete: on error nothing is returned.
func Build(rows []model.Row, opts ...Option) (*model.Stats, error) {
	o := newOptions(opts)
	if err := o.layout.Validate(); err != nil {
		return nil, err
	}

	stats := model.NewStats()
	if len(rows) <= 1 {
		return stats, nil
	}

	for i, row := range rows[1:] {
		line := i + 2
		if !row.Fits(o.layout) {
			return nil, &RowError{Line: line, Fields: len(row), Want: o.layout.Width()}
		}

		salary, err := ParseSalary(row.Salary(o.layout))
		if err != nil {
			return nil, &SalaryError{Line: line, Value: row.Salary(o.layout), Err: err}
		}

		department := row.Department(o.layout)
		stats.GetOrCreate(department).Observe(row.Team(o.layout), salary)

		o.logger.Debug("row aggregated",
			"line", line,
			"department", department,
			"salary", salary,
		)
	}

	return stats, nil
}

// ParseSalary converts a salary field to a float64.
// Surrounding spaces are ignored. NaN and infinities are rejected because
// they would break the min/max invariants.
func ParseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %v", v)
	}
	return v, nil
}
