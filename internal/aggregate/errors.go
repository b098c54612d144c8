package aggregate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSalary is returned when a salary field is not a finite number.
	ErrInvalidSalary = errors.New("invalid salary")

	// ErrShortRow is returned when a row lacks a column the layout needs.
	ErrShortRow = errors.New("row has too few fields")
)

// SalaryError describes a salary field that could not be parsed.
type SalaryError struct {
	// Line is the 1-based line number in the input, header included.
	Line int

	// Value is the raw field content.
	Value string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *SalaryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %v %q: %v", e.Line, ErrInvalidSalary, e.Value, e.Err)
	}
	return fmt.Sprintf("line %d: %v %q", e.Line, ErrInvalidSalary, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidSalary).
func (e *SalaryError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSalary, e.Err}
	}
	return []error{ErrInvalidSalary}
}

// RowError describes a row that is narrower than the layout.
type RowError struct {
	// Line is the 1-based line number in the input, header included.
	Line int

	// Fields is the number of fields the row has.
	Fields int

	// Want is the number of fields the layout needs.
	Want int
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v: got %d, need %d", e.Line, ErrShortRow, e.Fields, e.Want)
}

// Unwrap allows errors.Is(err, ErrShortRow).
func (e *RowError) Unwrap() error {
	return ErrShortRow
}
