package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/deptreport/internal/config"
)

// NewSaveCmd creates the save command.
func NewSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the summary report as CSV",
		Long: `Save writes the department summary to a comma-separated file with the header

  Department,Number of Employees,Minimum Salary,Maximum Salary,Average Salary

An existing file is overwritten. With --history the summary is also stored in
the history database so that it can be listed later with "deptreport history".

Examples:
  deptreport save
  deptreport save -o reports/2024-q1.csv --history`,
		Args: cobra.NoArgs,
		RunE: runSaveCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output CSV file path")
	cmd.Flags().Bool("history", false, "Also store the summary in the history database")

	return cmd
}

// runSaveCmd executes the save command.
func runSaveCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	stats, err := s.loadStats(ctx)
	if err != nil {
		return err
	}
	return s.saveSummary(ctx, cmd.OutOrStdout(), stats)
}
