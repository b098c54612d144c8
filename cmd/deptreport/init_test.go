package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/deptreport/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != ".deptreport.yaml" {
			t.Errorf("expected default %q, got %q", ".deptreport.yaml", flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	runInit := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		var out bytes.Buffer
		cmd := NewInitCmd()
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	t.Run("creates a config file that loads", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".deptreport.yaml")
		out, err := runInit(t, "-o", outputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Created configuration file") {
			t.Errorf("unexpected output: %q", out)
		}

		cf, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("generated file does not load: %v", err)
		}
		cfg := config.NewConfig()
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("generated file does not apply: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("generated file is not valid: %v", err)
		}
		if cfg.Delimiter != ';' || cfg.OutputPath != "department_report.csv" {
			t.Errorf("unexpected values from template: %+v", cfg)
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "a", "b", "config.yaml")
		if _, err := runInit(t, "-o", outputPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(outputPath); err != nil {
			t.Errorf("expected config file: %v", err)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".deptreport.yaml")
		if err := os.WriteFile(outputPath, []byte("format: json\n"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := runInit(t, "-o", outputPath)
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("expected already exists error, got %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) != "format: json\n" {
			t.Error("existing file was modified")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".deptreport.yaml")
		if err := os.WriteFile(outputPath, []byte("format: json\n"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := runInit(t, "-o", outputPath, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !strings.Contains(string(content), "layout:") {
			t.Error("expected template content after overwrite")
		}
	})
}
