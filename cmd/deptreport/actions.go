package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/deptreport/internal/database"
	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
	"github.com/nao1215/deptreport/internal/report"
)

// writeTeams lists every department with its teams.
func (s *session) writeTeams(w io.Writer, stats *model.Stats) error {
	_, err := report.NewTeamLister(w, s.reportOptions()...).Write(stats)
	return err
}

// writeSummary prints the summary report in the configured format.
// With withTeams the team listing is printed first.
func (s *session) writeSummary(w io.Writer, stats *model.Stats, withTeams bool) error {
	format, err := report.ParseFormat(s.cfg.Format)
	if err != nil {
		return err
	}
	summary, err := report.NewSummaryWriter(format, w, s.reportOptions()...)
	if err != nil {
		return err
	}

	var writer report.Writer = summary
	if withTeams {
		writer = report.NewMultiWriter(report.NewTeamLister(w, s.reportOptions()...), summary)
	}
	_, err = writer.Write(stats)
	return err
}

// saveSummary persists the summary report as CSV and, when enabled,
// records it in the history database.
func (s *session) saveSummary(ctx context.Context, w io.Writer, stats *model.Stats) error {
	persister := report.NewCSVPersister(s.cfg.OutputPath, w, s.reportOptions()...)
	if err := persister.Persist(stats); err != nil {
		return err
	}
	s.logger.Info("summary saved", "path", persister.Path(), "departments", stats.Len())

	if !s.cfg.SaveHistory {
		return nil
	}

	db, err := database.Open(s.cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, s.cfg.Inputs, persister.Path(), stats.Summary())
	if err != nil {
		return err
	}
	s.logger.Debug("summary recorded", "run", id, "db", db.Path())

	i18n.NewPrinter(s.lang).Fprintf(w, i18n.MsgHistorySaved, strconv.FormatInt(id, 10))
	return nil
}
