package model

import "fmt"

// Default column positions of the employee file.
const (
	DefaultDepartmentColumn = 1
	DefaultTeamColumn       = 2
	DefaultSalaryColumn     = 5
)

// Row is one line of the input file split into fields.
type Row []string

// Layout tells which field of a Row holds which value.
// Indexes are zero-based.
type Layout struct {
	Department int `yaml:"department"`
	Team       int `yaml:"team"`
	Salary     int `yaml:"salary"`
}

// DefaultLayout returns the column layout of the corporate summary export.
func DefaultLayout() Layout {
	return Layout{
		Department: DefaultDepartmentColumn,
		Team:       DefaultTeamColumn,
		Salary:     DefaultSalaryColumn,
	}
}

// Width returns the minimum number of fields a Row needs for this layout.
func (l Layout) Width() int {
	return max(l.Department, l.Team, l.Salary) + 1
}

// Validate reports whether all indexes are usable.
func (l Layout) Validate() error {
	if l.Department < 0 || l.Team < 0 || l.Salary < 0 {
		return fmt.Errorf("invalid layout %+v: column indexes must be non-negative", l)
	}
	return nil
}

// Department returns the department field.
// The caller must have checked that the row is wide enough.
func (r Row) Department(l Layout) string {
	return r[l.Department]
}

// Team returns the team field.
func (r Row) Team(l Layout) string {
	return r[l.Team]
}

// Salary returns the raw salary field.
func (r Row) Salary(l Layout) string {
	return r[l.Salary]
}

// Fits reports whether the row has every column the layout refers to.
func (r Row) Fits(l Layout) bool {
	return len(r) >= l.Width()
}
