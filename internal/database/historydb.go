package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/deptreport/internal/model"
)

// DBFileName is the name of the history database inside its directory.
const DBFileName = "deptreport.db"

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// HistoryDB provides SQLite-based storage for saved summary reports.
//
// Design decision: summary rows are stored in their own table rather than
// as one JSON blob, so that a department's history can be queried directly.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a new file, mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- One row per saved summary
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		sources TEXT NOT NULL,
		output TEXT NOT NULL,
		departments INTEGER NOT NULL,
		employees INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);

	-- Department rows of a saved summary, in report order
	CREATE TABLE IF NOT EXISTS run_departments (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		department TEXT NOT NULL,
		employees INTEGER NOT NULL,
		min_salary REAL NOT NULL,
		max_salary REAL NOT NULL,
		average_salary REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_run_departments_name ON run_departments(department);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Run is a saved summary report.
type Run struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Timestamp is when the summary was saved.
	Timestamp time.Time

	// Sources are the input files the summary was built from.
	Sources []string

	// Output is the CSV file the summary was written to.
	Output string

	// Rows are the department summaries in report order.
	Rows []model.SummaryRow
}

// RunMetadata describes a run without loading its rows.
type RunMetadata struct {
	ID          int64
	Timestamp   time.Time
	Sources     []string
	Output      string
	Departments int
	Employees   int
}

// SaveRun stores a summary and returns its ID.
// The run and its rows are written in one transaction.
func (hdb *HistoryDB) SaveRun(ctx context.Context, sources []string, output string, rows []model.SummaryRow) (int64, error) {
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize sources: %w", err)
	}

	employees := 0
	for _, r := range rows {
		employees += r.Employees
	}

	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (sources, output, departments, employees) VALUES (?, ?, ?, ?)`,
		string(sourcesJSON), output, len(rows), employees,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO run_departments
		(run_id, position, department, employees, min_salary, max_salary, average_salary)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare department insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, id, i, r.Department, r.Employees, r.MinSalary, r.MaxSalary, r.AverageSalary); err != nil {
			return 0, fmt.Errorf("failed to save department %q: %w", r.Department, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns metadata of all runs, newest first.
func (hdb *HistoryDB) ListRuns(ctx context.Context) ([]RunMetadata, error) {
	query := `
	SELECT id, timestamp, sources, output, departments, employees
	FROM runs
	ORDER BY id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp, sourcesJSON string
		if err := rows.Scan(&meta.ID, &timestamp, &sourcesJSON, &meta.Output, &meta.Departments, &meta.Employees); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		meta.Timestamp = parseTimestamp(timestamp)
		meta.Sources = parseSources(sourcesJSON)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetRun retrieves a run and its department rows.
// It returns ErrRunNotFound if no run has the given ID.
func (hdb *HistoryDB) GetRun(ctx context.Context, id int64) (*Run, error) {
	run := &Run{ID: id}
	var timestamp, sourcesJSON string

	err := hdb.db.QueryRowContext(ctx,
		`SELECT timestamp, sources, output FROM runs WHERE id = ?`, id,
	).Scan(&timestamp, &sourcesJSON, &run.Output)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.Timestamp = parseTimestamp(timestamp)
	run.Sources = parseSources(sourcesJSON)

	rows, err := hdb.db.QueryContext(ctx, `
	SELECT department, employees, min_salary, max_salary, average_salary
	FROM run_departments
	WHERE run_id = ?
	ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run departments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.SummaryRow
		if err := rows.Scan(&r.Department, &r.Employees, &r.MinSalary, &r.MaxSalary, &r.AverageSalary); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		run.Rows = append(run.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return run, nil
}

// parseSources decodes the JSON list of input files.
// A malformed value yields nil rather than failing the whole listing.
func parseSources(s string) []string {
	var sources []string
	if err := json.Unmarshal([]byte(s), &sources); err != nil {
		return nil
	}
	return sources
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
