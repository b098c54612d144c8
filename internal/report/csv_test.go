package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/nao1215/deptreport/internal/i18n"
	"github.com/nao1215/deptreport/internal/model"
)

// readSummaryCSV parses a file written by CSVPersister.
func readSummaryCSV(t *testing.T, path string) ([]string, []model.SummaryRow) {
	t.Helper()

	f, err := os.Open(path) //nolint:gosec // test file in t.TempDir
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	if len(records) == 0 {
		t.Fatal("expected at least a header row")
	}

	parseFloat := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("invalid number %q: %v", s, err)
		}
		return v
	}

	rows := make([]model.SummaryRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		employees, err := strconv.Atoi(rec[1])
		if err != nil {
			t.Fatalf("invalid employee count %q: %v", rec[1], err)
		}
		rows = append(rows, model.SummaryRow{
			Department:    rec[0],
			Employees:     employees,
			MinSalary:     parseFloat(rec[2]),
			MaxSalary:     parseFloat(rec[3]),
			AverageSalary: parseFloat(rec[4]),
		})
	}
	return records[0], rows
}

func TestCSVWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewCSVWriter(&buf).Write(createTestStats())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Department,Number of Employees,Minimum Salary,Maximum Salary,Average Salary\n" +
			"Engineering,2,50000,70000,60000.00\n" +
			"Sales,1,40000,40000,40000.00\n"
		if buf.String() != want {
			t.Errorf("expected %q, got %q", want, buf.String())
		}
		if n != buf.Len() {
			t.Errorf("expected %d bytes reported, got %d", buf.Len(), n)
		}
	})

	t.Run("average tie rounds to even", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(createTieStats()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Support,8,100,101,100.12\n") {
			t.Errorf("expected average 100.12, got %q", buf.String())
		}
	})

	t.Run("quotes department names containing commas", func(t *testing.T) {
		t.Parallel()

		stats := model.NewStats()
		stats.GetOrCreate("R&D, Labs").Observe("Core", 1)

		var buf bytes.Buffer
		if _, err := NewCSVWriter(&buf).Write(stats); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"R&D, Labs",1,1,1,1.00`) {
			t.Errorf("expected quoted department, got %q", buf.String())
		}
	})
}

func TestCSVPersister(t *testing.T) {
	t.Parallel()

	t.Run("round trip matches the in-memory summary", func(t *testing.T) {
		t.Parallel()

		stats := model.NewStats()
		eng := stats.GetOrCreate("Engineering")
		eng.Observe("Backend", 50000)
		eng.Observe("Frontend", 70000.25)
		eng.Observe("Frontend", 61000)
		stats.GetOrCreate("Sales").Observe("Field", 40000)
		stats.GetOrCreate("Отдел кадров").Observe("Подбор", 35000.5)

		path := filepath.Join(t.TempDir(), "department_report.csv")
		var confirm bytes.Buffer
		if err := NewCSVPersister(path, &confirm).Persist(stats); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		header, rows := readSummaryCSV(t, path)
		if !slices.Equal(header, CSVHeader()) {
			t.Errorf("unexpected header %v", header)
		}
		if !slices.Equal(rows, stats.Summary()) {
			t.Errorf("expected %+v, got %+v", stats.Summary(), rows)
		}
		if confirm.String() != "Report saved to "+path+"\n" {
			t.Errorf("unexpected confirmation %q", confirm.String())
		}
	})

	t.Run("empty stats writes the header only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "department_report.csv")
		if err := NewCSVPersister(path, &bytes.Buffer{}).Persist(model.NewStats()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		header, rows := readSummaryCSV(t, path)
		if len(header) != 5 || len(rows) != 0 {
			t.Errorf("expected header only, got %v %v", header, rows)
		}
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "department_report.csv")
		if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0600); err != nil {
			t.Fatal(err)
		}

		if err := NewCSVPersister(path, &bytes.Buffer{}).Persist(createTestStats()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path) //nolint:gosec // test file in t.TempDir
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(content), "stale") {
			t.Error("expected previous content to be replaced")
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "2026", "summary.csv")
		if err := NewCSVPersister(path, &bytes.Buffer{}).Persist(createTestStats()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("write failure is returned", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		if err := os.WriteFile(blocker, nil, 0600); err != nil {
			t.Fatal(err)
		}

		var confirm bytes.Buffer
		err := NewCSVPersister(filepath.Join(blocker, "report.csv"), &confirm).Persist(createTestStats())
		if err == nil {
			t.Fatal("expected error when the parent is a regular file")
		}
		if confirm.Len() != 0 {
			t.Errorf("expected no confirmation on failure, got %q", confirm.String())
		}
	})

	t.Run("default path and russian confirmation", func(t *testing.T) {
		t.Parallel()

		p := NewCSVPersister("", &bytes.Buffer{}, WithLanguage(i18n.Russian))
		if p.Path() != DefaultCSVPath {
			t.Errorf("expected default path %q, got %q", DefaultCSVPath, p.Path())
		}

		path := filepath.Join(t.TempDir(), "out.csv")
		var confirm bytes.Buffer
		if err := NewCSVPersister(path, &confirm, WithLanguage(i18n.Russian)).Persist(createTestStats()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(confirm.String(), "Отчёт сохранен в файл") {
			t.Errorf("unexpected confirmation %q", confirm.String())
		}
	})
}
