// Package report renders department statistics.
//
// This package contains the three reporters of deptreport:
//   - TeamLister: departments and their teams
//   - TextWriter, MarkdownWriter, JSONWriter: the summary report in several formats
//   - CSVPersister: the summary report saved as a comma-separated file
//
// Design decision: Reporters only read a *model.Stats. None of them mutates
// it, so the same Stats can be handed to several writers through MultiWriter.
//
// Console reporters write nothing for an empty Stats, headings included.
// The CSV persister still writes its header row so the file is a valid,
// empty table.
package report
