package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/nao1215/deptreport/internal/i18n"
)

// menuChoice is an action of the interactive menu.
type menuChoice int

const (
	choiceTeams menuChoice = iota + 1
	choiceSummary
	choiceSave
)

// errNoChoice is returned when input ends before a valid choice was made.
var errNoChoice = errors.New("no action selected")

// NewMenuCmd creates the menu command.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Choose an action interactively (default command)",
		Long: `Menu asks which action to run and reads the answer from standard input:

  1. List departments and their teams
  2. Print the department summary report
  3. Save the summary report as CSV

Invalid answers are asked again. The input file is read after a valid
choice has been made.`,
		Args: cobra.NoArgs,
		RunE: runMenuCmd,
	}
}

// runMenuCmd executes the interactive menu.
func runMenuCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()
	choice, err := promptChoice(cmd.InOrStdin(), out, i18n.NewPrinter(s.lang))
	if err != nil {
		return err
	}
	s.logger.Debug("menu choice", "choice", int(choice))

	stats, err := s.loadStats(ctx)
	if err != nil {
		return err
	}

	switch choice {
	case choiceTeams:
		return s.writeTeams(out, stats)
	case choiceSummary:
		return s.writeSummary(out, stats, false)
	case choiceSave:
		return s.saveSummary(ctx, out, stats)
	default:
		return fmt.Errorf("unknown menu choice %d", choice)
	}
}

// promptChoice prints the menu and reads lines until one is 1, 2 or 3.
func promptChoice(in io.Reader, out io.Writer, p *message.Printer) (menuChoice, error) {
	p.Fprintf(out, i18n.MsgMenuPrompt)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			return choiceTeams, nil
		case "2":
			return choiceSummary, nil
		case "3":
			return choiceSave, nil
		}
		p.Fprintf(out, i18n.MsgMenuRetry)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read choice: %w", err)
	}
	return 0, errNoChoice
}
