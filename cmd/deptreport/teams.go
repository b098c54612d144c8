package main

import (
	"github.com/spf13/cobra"
)

// NewTeamsCmd creates the teams command.
func NewTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List departments and their teams",
		Long: `Teams prints every department in the order it first appears in the input,
followed by its distinct teams.

Examples:
  deptreport teams
  deptreport teams -i north.csv -i south.csv --lang ru`,
		Args: cobra.NoArgs,
		RunE: runTeamsCmd,
	}
}

// runTeamsCmd executes the teams command.
func runTeamsCmd(cmd *cobra.Command, _ []string) error {
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
	return s.writeTeams(cmd.OutOrStdout(), stats)
}
