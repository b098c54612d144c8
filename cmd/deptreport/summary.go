package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/deptreport/internal/config"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the department summary report",
		Long: `Summary prints, for every department, the number of employees and the
minimum, maximum and average salary. The average is rounded to two decimals.

Formats:
  text      labelled blocks, translated with --lang (default)
  markdown  a table, the team lists and a mermaid pie chart of head count
  json      an array of department objects

Examples:
  deptreport summary
  deptreport summary --format markdown > summary.md
  deptreport summary --format json --teams`,
		Args: cobra.NoArgs,
		RunE: runSummaryCmd,
	}

	cmd.Flags().String("format", config.DefaultFormat, "Output format: text, markdown or json")
	cmd.Flags().Bool("teams", false, "Print the team listing before the summary")

	return cmd
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	withTeams, err := cmd.Flags().GetBool("teams")
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	stats, err := s.loadStats(ctx)
	if err != nil {
		return err
	}
	return s.writeSummary(cmd.OutOrStdout(), stats, withTeams)
}
