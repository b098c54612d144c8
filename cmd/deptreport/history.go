package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/deptreport/internal/database"
	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/report"
)

// historyTimeFormat is used when listing saved summaries.
const historyTimeFormat = "2006-01-02 15:04:05"

// errInvalidRunID is returned when --show is given an ID below 1.
var errInvalidRunID = errors.New("run ID must be a positive integer")

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List summaries saved with --history",
		Long: `History lists the summaries stored by "deptreport save --history", newest first.
Use --show to print one of them as CSV.

The database is kept in the XDG data directory (on Linux
~/.local/share/deptreport/deptreport.db).

Examples:
  deptreport history
  deptreport history --show 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int64("show", 0, "Print the saved summary with this ID")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("show") && showID <= 0 {
		return fmt.Errorf("%w: %d", errInvalidRunID, showID)
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	db, err := database.Open(s.cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("show") {
		return showRun(ctx, db, out, showID)
	}
	return s.listRuns(ctx, db, out)
}

// listRuns prints one line per saved summary.
func (s *session) listRuns(ctx context.Context, db *database.HistoryDB, out io.Writer) error {
	runs, err := db.ListRuns(ctx)
	if err != nil {
		return err
	}

	p := i18n.NewPrinter(s.lang)
	if len(runs) == 0 {
		p.Fprintf(out, i18n.MsgHistoryEmpty)
		return nil
	}

	p.Fprintf(out, i18n.MsgHistoryListHead, strconv.Itoa(len(runs)))
	for _, r := range runs {
		fmt.Fprintf(out, "#%d  %s  departments=%d employees=%d  %s -> %s\n",
			r.ID,
			r.Timestamp.Format(historyTimeFormat),
			r.Departments,
			r.Employees,
			strings.Join(r.Sources, ","),
			r.Output,
		)
	}
	return nil
}

// showRun prints a saved summary in the CSV report layout.
func showRun(ctx context.Context, db *database.HistoryDB, out io.Writer, id int64) error {
	run, err := db.GetRun(ctx, id)
	if err != nil {
		return err
	}
	_, err = report.NewCSVWriter(out).WriteRows(run.Rows)
	return err
}
