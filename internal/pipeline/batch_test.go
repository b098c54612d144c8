package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/nao1215/deptreport/internal/aggregate"
	"github.com/nao1215/deptreport/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const header = "name;department;team;position;grade;salary\n"

// TestNewBatchAggregator tests the creation of a BatchAggregator.
func TestNewBatchAggregator(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults", func(t *testing.T) {
		t.Parallel()

		b := NewBatchAggregator()
		if b.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, b.concurrency)
		}
		if b.logger == nil || b.build == nil {
			t.Error("expected default logger and build func")
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		b := NewBatchAggregator(WithConcurrency(0), WithConcurrency(-3))
		if b.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, b.concurrency)
		}
		if NewBatchAggregator(WithConcurrency(2)).concurrency != 2 {
			t.Error("expected concurrency 2")
		}
	})
}

func TestBatchAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	t.Run("merges files in argument order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		north := writeCSV(t, dir, "north.csv", header+
			"Ann;Sales;East;Rep;1;40000\n"+
			"Bob;Engineering;Backend;Dev;2;70000\n")
		south := writeCSV(t, dir, "south.csv", header+
			"Cid;HR;People;Lead;3;50000\n"+
			"Dan;Sales;West;Rep;1;30000\n")

		b := NewBatchAggregator(
			WithBatchLogger(quietLogger()),
			WithAggregateOptions(aggregate.WithLogger(quietLogger())),
		)
		stats, err := b.Aggregate(context.Background(), []string{north, south})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := []string{"Sales", "Engineering", "HR"}; !slices.Equal(stats.Names(), want) {
			t.Errorf("expected order %v, got %v", want, stats.Names())
		}

		sales, _ := stats.Get("Sales")
		if sales.Count != 2 || sales.MinSalary != 30000 || sales.MaxSalary != 40000 {
			t.Errorf("unexpected Sales stats: %+v", sales)
		}
		if !slices.Equal(sales.Teams(), []string{"East", "West"}) {
			t.Errorf("unexpected Sales teams: %v", sales.Teams())
		}
		if stats.TotalEmployees() != 4 {
			t.Errorf("expected 4 employees, got %d", stats.TotalEmployees())
		}
	})

	t.Run("order does not depend on completion order", func(t *testing.T) {
		t.Parallel()

		paths := []string{"a", "b", "c", "d", "e"}
		build := func(path string, _ ...aggregate.Option) (*model.Stats, error) {
			s := model.NewStats()
			s.GetOrCreate("dept-"+path).Observe("team", 1)
			return s, nil
		}

		for i := 0; i < 20; i++ {
			stats, err := NewBatchAggregator(
				WithBuildFunc(build),
				WithConcurrency(5),
				WithBatchLogger(quietLogger()),
			).Aggregate(context.Background(), paths)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := []string{"dept-a", "dept-b", "dept-c", "dept-d", "dept-e"}
			if !slices.Equal(stats.Names(), want) {
				t.Fatalf("expected %v, got %v", want, stats.Names())
			}
		}
	})

	t.Run("single file bypasses the group", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeCSV(t, dir, "only.csv", header+"Ann;Sales;East;Rep;1;40000\n")

		stats, err := NewBatchAggregator(
			WithBatchLogger(quietLogger()),
			WithAggregateOptions(aggregate.WithLogger(quietLogger())),
		).Aggregate(context.Background(), []string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.Len() != 1 {
			t.Errorf("expected 1 department, got %d", stats.Len())
		}
	})

	t.Run("one failing file fails the batch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeCSV(t, dir, "good.csv", header+"Ann;Sales;East;Rep;1;40000\n")
		bad := writeCSV(t, dir, "bad.csv", header+"Bob;Sales;East;Rep;1;lots\n")

		stats, err := NewBatchAggregator(
			WithBatchLogger(quietLogger()),
			WithAggregateOptions(aggregate.WithLogger(quietLogger())),
		).Aggregate(context.Background(), []string{good, bad})
		if !errors.Is(err, aggregate.ErrInvalidSalary) {
			t.Fatalf("expected ErrInvalidSalary, got %v", err)
		}
		if stats != nil {
			t.Error("expected nil stats on failure")
		}
	})

	t.Run("missing file is reported", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := writeCSV(t, dir, "good.csv", header+"Ann;Sales;East;Rep;1;40000\n")

		_, err := NewBatchAggregator(
			WithBatchLogger(quietLogger()),
			WithAggregateOptions(aggregate.WithLogger(quietLogger())),
		).Aggregate(context.Background(), []string{good, filepath.Join(dir, "absent.csv")})
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("canceled context stops before building", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		build := func(_ string, _ ...aggregate.Option) (*model.Stats, error) {
			calls.Add(1)
			return model.NewStats(), nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for _, paths := range [][]string{{"a"}, {"a", "b", "c"}} {
			_, err := NewBatchAggregator(
				WithBuildFunc(build),
				WithBatchLogger(quietLogger()),
			).Aggregate(ctx, paths)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled for %v, got %v", paths, err)
			}
		}
		if calls.Load() != 0 {
			t.Errorf("expected no build calls, got %d", calls.Load())
		}
	})

	t.Run("options reach every file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeCSV(t, dir, "a.csv", "dept,salary\nHR,100\n")
		b := writeCSV(t, dir, "b.csv", "dept,salary\nHR,300\n")

		stats, err := NewBatchAggregator(
			WithBatchLogger(quietLogger()),
			WithAggregateOptions(
				aggregate.WithDelimiter(','),
				aggregate.WithLayout(model.Layout{Department: 0, Team: 0, Salary: 1}),
				aggregate.WithLogger(quietLogger()),
			),
		).Aggregate(context.Background(), []string{a, b})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hr, ok := stats.Get("HR")
		if !ok {
			t.Fatal("expected HR department")
		}
		if hr.Count != 2 || hr.TotalSalary != 400 {
			t.Errorf("unexpected HR stats: %+v", hr)
		}
	})
}
