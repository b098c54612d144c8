package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/deptreport/internal/aggregate"
	"github.com/nao1215/deptreport/internal/model"
)

// DefaultConcurrency is the number of files aggregated at once when
// WithConcurrency is not given.
const DefaultConcurrency = 4

// BuildFunc loads and aggregates one file.
type BuildFunc func(path string, opts ...aggregate.Option) (*model.Stats, error)

// BatchAggregator aggregates multiple input files concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
type BatchAggregator struct {
	// build aggregates a single file. It defaults to aggregate.BuildDepartmentStats.
	build BuildFunc

	// concurrency is the maximum number of files aggregated at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// aggregateOpts are passed to every build call.
	aggregateOpts []aggregate.Option
}

// BatchOption configures a BatchAggregator.
type BatchOption func(*BatchAggregator)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchAggregator) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of files aggregated at once.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchAggregator) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithAggregateOptions sets the options used for every file.
func WithAggregateOptions(opts ...aggregate.Option) BatchOption {
	return func(b *BatchAggregator) {
		b.aggregateOpts = append(b.aggregateOpts, opts...)
	}
}

// WithBuildFunc replaces the per-file aggregation.
func WithBuildFunc(fn BuildFunc) BatchOption {
	return func(b *BatchAggregator) {
		if fn != nil {
			b.build = fn
		}
	}
}

// NewBatchAggregator creates a new BatchAggregator.
func NewBatchAggregator(opts ...BatchOption) *BatchAggregator {
	b := &BatchAggregator{
		build:       aggregate.BuildDepartmentStats,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Aggregate builds one Stats from all paths.
//
// Results are merged in the order of paths, not in completion order.
// The first failure cancels the remaining files and no Stats is returned.
// Cancellation of ctx is checked before each file starts.
func (b *BatchAggregator) Aggregate(ctx context.Context, paths []string) (*model.Stats, error) {
	if len(paths) == 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return b.build(paths[0], b.aggregateOpts...)
	}

	b.logger.Info("starting batch aggregation",
		"files", len(paths),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	// Pre-allocated so that each goroutine owns one slot and order is kept.
	results := make([]*model.Stats, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			stats, err := b.build(path, b.aggregateOpts...)
			if err != nil {
				b.logger.Warn("aggregation failed",
					"path", path,
					"error", err,
				)
				return err
			}

			b.logger.Debug("file aggregated",
				"path", path,
				"index", i+1,
				"departments", stats.Len(),
			)
			results[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch aggregation failed: %w", err)
	}

	merged := model.NewStats()
	for _, s := range results {
		merged.Merge(s)
	}

	b.logger.Info("batch aggregation complete",
		"files", len(paths),
		"departments", merged.Len(),
		"employees", merged.TotalEmployees(),
		"elapsed", time.Since(startTime),
	)
	return merged, nil
}
