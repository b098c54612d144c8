package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for deptreport.
// Without a subcommand it runs the interactive menu.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deptreport",
		Short: "Department salary reports from employee CSV exports",
		Long: `deptreport aggregates a semicolon-delimited employee export by department.

For every department it reports the teams, the number of employees and the
minimum, maximum and average salary. Run without a subcommand to choose an
action interactively.

Settings are read from .deptreport.yaml (see "deptreport init"), then from
DEPTREPORT_* environment variables or a .env file, then from flags.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenuCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to configuration file (default: search .deptreport.yaml)")
	cmd.PersistentFlags().StringArrayP("input", "i", nil,
		"Employee CSV file; repeat to merge several files")
	cmd.PersistentFlags().StringP("lang", "l", "", "Output language: en or ru")

	// Add subcommands
	cmd.AddCommand(NewMenuCmd())
	cmd.AddCommand(NewTeamsCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewSaveCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
