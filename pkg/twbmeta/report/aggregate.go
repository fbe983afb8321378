package report

import (
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// FileResult is the outcome of processing one source file:
// either its assembled rows or the reason it failed.
type FileResult struct {
	File string
	Rows []models.OutputRow
	Err  error
}

// Ok returns a successful result for file.
func Ok(file string, rows []models.OutputRow) FileResult {
	return FileResult{File: file, Rows: rows}
}

// Failed returns a failed result for file.
func Failed(file string, err error) FileResult {
	return FileResult{File: file, Err: err}
}

// IsFailed reports whether the file could not be processed.
func (r FileResult) IsFailed() bool {
	return r.Err != nil
}

// FileFailure records a skipped file.
type FileFailure struct {
	File string
	Err  error
}

// Table is the aggregated report of one run.
type Table struct {
	// Rows holds the report rows with contiguous ids in emission order.
	Rows []models.OutputRow
	// Failures lists skipped files in input order.
	Failures []FileFailure
	// Files counts the successfully aggregated files.
	Files int
}

// Aggregator folds per-file results into a Table, assigning global row ids.
type Aggregator struct {
	seq   Sequence
	table Table
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends a file's rows, or records its failure. Rows of earlier files
// are never affected by a later failure.
func (a *Aggregator) Add(res FileResult) {
	if res.IsFailed() {
		a.table.Failures = append(a.table.Failures, FileFailure{File: res.File, Err: res.Err})
		return
	}
	a.table.Files++
	for _, row := range res.Rows {
		row.RowID = a.seq.Next()
		a.table.Rows = append(a.table.Rows, row)
	}
}

// Table returns the aggregated table.
func (a *Aggregator) Table() *Table {
	t := a.table
	return &t
}

// Aggregate folds results in the order given.
func Aggregate(results ...FileResult) *Table {
	a := NewAggregator()
	for _, res := range results {
		a.Add(res)
	}
	return a.Table()
}
