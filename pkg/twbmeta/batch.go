package twbmeta

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/report"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/validator"
)

// Result is the outcome of a batch run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID
	// Files lists the discovered input files in processing order.
	Files []string
	// Table holds the aggregated rows and the skipped files.
	Table *report.Table
}

// Run discovers workbook files under inputs, extracts each one and
// aggregates their rows into a single table. A file that cannot be read, or
// whose rows break the report contract, is skipped and reported in
// Table.Failures; only discovery errors and context cancellation fail the run.
func Run(ctx context.Context, inputs []string, opts Options) (*Result, error) {
	runID := uuid.New()
	log := opts.logger().With("run", runID.String())

	log.Info("batch.start", "inputs", len(inputs), "workers", opts.Workers)
	files, err := Discover(inputs, opts)
	if err != nil {
		return nil, err
	}
	log.Info("batch.discovered", "files", len(files))

	results, err := processFiles(ctx, files, opts.Workers, log)
	if err != nil {
		return nil, err
	}
	if err := checkFiles(results, opts, log); err != nil {
		return nil, err
	}

	table := report.Aggregate(results...)
	log.Info("batch.done",
		"files", table.Files,
		"failed", len(table.Failures),
		"rows", len(table.Rows),
	)

	return &Result{
		RunID: runID,
		Files: files,
		Table: table,
	}, nil
}

// processFiles extracts files in order. With more than one worker files are
// extracted concurrently, but results keep the input order.
func processFiles(ctx context.Context, files []string, workers int, log *slog.Logger) ([]report.FileResult, error) {
	results := make([]report.FileResult, len(files))

	if workers < 2 {
		for i, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = processFile(path, log)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(path, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func processFile(path string, log *slog.Logger) report.FileResult {
	res := ExtractRows(path)
	if res.IsFailed() {
		log.Warn("file.failed", "file", path, "error", res.Err)
	}
	return res
}

// checkFiles validates the rows of each extracted file in input order. A
// file whose rows break the report contract is turned into a failure so
// the other files still reach the report.
func checkFiles(results []report.FileResult, opts Options, log *slog.Logger) error {
	var v *validator.Validator
	if opts.ShouldValidate() {
		var err error
		if v, err = validator.New(); err != nil {
			return err
		}
	}

	for i, res := range results {
		if res.IsFailed() {
			continue
		}
		if v != nil {
			if err := v.ValidateRows(res.Rows); err != nil {
				err = NewExtractionError(res.File, "validate", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
				results[i] = report.Failed(res.File, err)
				log.Warn("file.failed", "file", res.File, "error", err)
				continue
			}
		}
		log.Info("file.parsed", "file", res.File, "rows", len(res.Rows))
	}
	return nil
}
