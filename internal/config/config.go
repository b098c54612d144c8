package config

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/loader"
	"github.com/nao1215/deptreport/internal/model"
	"github.com/nao1215/deptreport/internal/report"
)

// Default configuration values.
const (
	// DefaultInput is the employee export read when no input is configured.
	DefaultInput = "Corp_Summary.csv"

	// DefaultOutput is the file the summary report is saved to.
	DefaultOutput = report.DefaultCSVPath

	// DefaultDelimiter is the field separator of the employee export.
	DefaultDelimiter = ';'

	// DefaultLanguage is the language of console messages.
	DefaultLanguage = "en"

	// DefaultFormat is the format of the printed summary.
	DefaultFormat = string(report.FormatText)

	// DefaultConcurrency limits how many input files are aggregated at once.
	// It only matters when several inputs are given.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "deptreport"
)

// Config holds all configuration options for deptreport.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, and is passed through the application explicitly.
type Config struct {
	// Inputs are the employee files to aggregate. One file is the normal case;
	// several files are merged into a single report.
	Inputs []string

	// OutputPath is where the CSV persister writes the summary.
	OutputPath string

	// Delimiter is the field separator of the input files.
	Delimiter rune

	// Layout is the positional meaning of input columns.
	Layout model.Layout

	// Language selects English ("en") or Russian ("ru") messages.
	Language string

	// Format selects the summary printer: text, markdown or json.
	Format string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file to use.
	// If empty, the standard locations are searched.
	ConfigFilePath string

	// SaveHistory stores every persisted summary in the history database.
	SaveHistory bool

	// DBDir is the directory of the history database.
	// Defaults to the XDG data directory.
	DBDir string

	// Concurrency is the number of input files aggregated in parallel.
	Concurrency int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Inputs:      []string{DefaultInput},
		OutputPath:  DefaultOutput,
		Delimiter:   DefaultDelimiter,
		Layout:      model.DefaultLayout(),
		Language:    DefaultLanguage,
		Format:      DefaultFormat,
		DBDir:       XDGDataDir(),
		Concurrency: DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for deptreport.
// On Linux: ~/.local/share/deptreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for deptreport.
// On Linux: ~/.config/deptreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	for _, in := range c.Inputs {
		if in == "" {
			return ErrNoInput
		}
	}

	if c.OutputPath == "" {
		return ErrNoOutput
	}

	if !loader.ValidDelimiter(c.Delimiter) {
		return ErrInvalidDelimiter
	}

	if err := c.Layout.Validate(); err != nil {
		return ErrInvalidLayout
	}

	if _, err := i18n.Parse(c.Language); err != nil {
		return ErrInvalidLanguage
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return ErrInvalidFormat
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// parseDelimiter converts a one-character string to a rune.
// "\t" and "tab" both select a tab.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidDelimiter
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !loader.ValidDelimiter(r) {
		return 0, ErrInvalidDelimiter
	}
	return r, nil
}
