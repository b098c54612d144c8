package main

import (
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "deptreport" {
			t.Errorf("expected use 'deptreport', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("runs the menu without subcommand", func(t *testing.T) {
		t.Parallel()
		if cmd.RunE == nil {
			t.Error("expected root command to be runnable")
		}
	})

	t.Run("has persistent flags", func(t *testing.T) {
		t.Parallel()

		for name, shorthand := range map[string]string{
			"verbose": "v",
			"config":  "c",
			"input":   "i",
			"lang":    "l",
		} {
			flag := cmd.PersistentFlags().Lookup(name)
			if flag == nil {
				t.Errorf("expected %s flag", name)
				continue
			}
			if flag.Shorthand != shorthand {
				t.Errorf("expected %s shorthand %q, got %q", name, shorthand, flag.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		want := map[string]bool{
			"menu": false, "teams": false, "summary": false, "save": false,
			"history": false, "init": false, "version": false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}
