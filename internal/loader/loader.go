package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nao1215/deptreport/internal/model"
)

// DefaultDelimiter is the field separator of the employee export.
const DefaultDelimiter = ';'

// ErrInvalidEncoding is returned when the file content is not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// ErrInvalidDelimiter is returned for a delimiter encoding/csv cannot use.
var ErrInvalidDelimiter = errors.New("invalid field delimiter")

// options configures Load.
type options struct {
	delimiter rune
}

// Option configures Load.
type Option func(*options)

// WithDelimiter sets the field separator. The default is ';'.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// Load reads the file at path and returns all rows, header included.
//
// A missing file yields an error that satisfies errors.Is(err, fs.ErrNotExist).
// Content that is not UTF-8 yields ErrInvalidEncoding. A leading byte order
// mark is dropped so that it does not end up in the first header field.
func Load(path string, opts ...Option) ([]model.Row, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Reading a user-provided input file is the purpose of this function
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows, err := Parse(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// Parse reads delimited UTF-8 text from r. See Load.
func Parse(r io.Reader, opts ...Option) ([]model.Row, error) {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	if !ValidDelimiter(o.delimiter) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, o.delimiter)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	// UTF8BOM decoding removes a leading BOM and leaves the rest untouched.
	data, _, err = transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = o.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]model.Row, len(records))
	for i, rec := range records {
		rows[i] = model.Row(rec)
	}
	return rows, nil
}

// ValidDelimiter reports whether encoding/csv accepts r as a field delimiter.
// It mirrors the checks csv.Reader applies to Comma.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
