package report

import (
	"io"
	"strings"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// TeamLister outputs every department followed by its comma-joined teams.
type TeamLister struct {
	baseWriter
}

// NewTeamLister creates a TeamLister that outputs to the given writer.
func NewTeamLister(output io.Writer, opts ...Option) *TeamLister {
	return &TeamLister{baseWriter: newBaseWriter(output, opts...)}
}

// Write lists departments in the order they were first seen.
func (w *TeamLister) Write(stats *model.Stats) (int, error) {
	if stats.IsEmpty() {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(w.printer.Sprintf(i18n.MsgTeamsHeading))
	sb.WriteString("\n")

	for _, d := range stats.Departments() {
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(d.Teams(), ", "))
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}
