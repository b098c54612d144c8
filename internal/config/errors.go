package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and by the file and
// environment loaders. Callers can use errors.Is() to tell them apart.
var (
	// ErrNoInput is returned when no input file is configured.
	ErrNoInput = errors.New("no input file specified: use --input or set input in the config file")

	// ErrNoOutput is returned when the summary output path is empty.
	ErrNoOutput = errors.New("no output file specified")

	// ErrInvalidDelimiter is returned for a delimiter that is not a single
	// usable character (quote, newline and carriage return are not allowed).
	ErrInvalidDelimiter = errors.New("invalid delimiter: must be a single character other than quote or newline")

	// ErrInvalidLayout is returned when a column index is negative.
	ErrInvalidLayout = errors.New("invalid column layout: indexes must be non-negative")

	// ErrInvalidLanguage is returned for a language other than en or ru.
	ErrInvalidLanguage = errors.New("invalid language: use en or ru")

	// ErrInvalidFormat is returned for an unknown summary format.
	ErrInvalidFormat = errors.New("invalid format: use text, markdown or json")

	// ErrInvalidConcurrency is returned when concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
