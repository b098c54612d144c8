package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects how the summary report is rendered.
type Format string

// Supported summary formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown report format: use text, markdown or json")

// ParseFormat resolves a format name. An empty name selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// NewSummaryWriter returns the summary printer for format.
func NewSummaryWriter(format Format, output io.Writer, opts ...Option) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(output, opts...), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, opts...), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
