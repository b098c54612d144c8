package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File represents the structure of a .deptreport.yaml configuration file.
// Every field is optional; unset fields leave the current value alone.
//
// Example:
//
//	input:
//	  - Corp_Summary.csv
//	output: department_report.csv
//	delimiter: ";"
//	language: ru
//	format: markdown
//	layout:
//	  department: 1
//	  team: 2
//	  salary: 5
//	history: true
//	data_dir: /var/lib/deptreport
type File struct {
	// Input is one path or a list of paths.
	Input InputList `yaml:"input,omitempty"`

	// Output is the CSV summary destination.
	Output string `yaml:"output,omitempty"`

	// Delimiter is a single character, or "tab".
	Delimiter string `yaml:"delimiter,omitempty"`

	// Language is "en" or "ru".
	Language string `yaml:"language,omitempty"`

	// Format is text, markdown or json.
	Format string `yaml:"format,omitempty"`

	// Layout overrides individual column indexes.
	Layout *LayoutFile `yaml:"layout,omitempty"`

	// History stores saved summaries in the history database.
	History *bool `yaml:"history,omitempty"`

	// DataDir is the directory of the history database.
	DataDir string `yaml:"data_dir,omitempty"`
}

// LayoutFile holds column indexes as pointers so that a file can override
// only some of them.
type LayoutFile struct {
	Department *int `yaml:"department,omitempty"`
	Team       *int `yaml:"team,omitempty"`
	Salary     *int `yaml:"salary,omitempty"`
}

// InputList accepts either a scalar or a sequence in YAML.
type InputList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *InputList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = InputList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("input: expected a path or a list of paths (line %d)", node.Line)
	}
}

// Apply copies the values set in the file onto cfg.
func (f *File) Apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if len(f.Input) > 0 {
		cfg.Inputs = append([]string(nil), f.Input...)
	}
	if f.Output != "" {
		cfg.OutputPath = f.Output
	}
	if f.Delimiter != "" {
		r, err := parseDelimiter(f.Delimiter)
		if err != nil {
			return fmt.Errorf("delimiter %q: %w", f.Delimiter, err)
		}
		cfg.Delimiter = r
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.Layout != nil {
		if f.Layout.Department != nil {
			cfg.Layout.Department = *f.Layout.Department
		}
		if f.Layout.Team != nil {
			cfg.Layout.Team = *f.Layout.Team
		}
		if f.Layout.Salary != nil {
			cfg.Layout.Salary = *f.Layout.Salary
		}
	}
	if f.History != nil {
		cfg.SaveHistory = *f.History
	}
	if f.DataDir != "" {
		cfg.DBDir = f.DataDir
	}
	return nil
}
