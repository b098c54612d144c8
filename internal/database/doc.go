// Package database provides SQLite-based storage for deptreport.
//
// This package implements the HistoryDB, which keeps every summary report
// that was saved with history enabled, so that earlier payroll snapshots can
// be listed and compared later.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. The history is small and written by one process at a time
package database
