package twbmeta

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/output"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/report"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/validator"
)

// Write checks the table's row ids (unless disabled) and serializes it to w.
// Every failure is returned as an *OutputError.
func Write(w io.Writer, table *report.Table, opts Options) error {
	if err := check(table, opts); err != nil {
		return &OutputError{Err: err}
	}
	if err := output.Write(w, opts.Format, table.Rows, opts.OutputOptions()); err != nil {
		return &OutputError{Err: err}
	}
	return nil
}

// WriteFile writes the report to path. When path is an existing directory
// the report is written there under the default file name for the format.
// It returns the path actually written.
func WriteFile(path string, table *report.Table, opts Options) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, opts.Format.FileName())
	}

	if err := check(table, opts); err != nil {
		return "", &OutputError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &OutputError{Path: path, Err: err}
	}
	if err := output.Write(f, opts.Format, table.Rows, opts.OutputOptions()); err != nil {
		return "", &OutputError{Path: path, Err: errors.Join(err, f.Close())}
	}
	if err := f.Close(); err != nil {
		return "", &OutputError{Path: path, Err: err}
	}
	return path, nil
}

// check verifies the row ids of the aggregated table. Row content is
// validated per file during Run.
func check(table *report.Table, opts Options) error {
	if !opts.ShouldValidate() {
		return nil
	}
	return validator.CheckSequence(table.Rows)
}
