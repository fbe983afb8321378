// Package twbmeta extracts field metadata from Tableau workbooks into a flat report.
package twbmeta

import (
	"log/slog"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/output"
)

// Options configures a batch run.
type Options struct {
	// Format is the report format (csv, xlsx, json).
	Format output.Format `yaml:"format"`
	// Extensions lists file extensions picked up when scanning directories.
	Extensions []string `yaml:"extensions"`
	// Recursive specifies whether directories are scanned recursively.
	// If nil, defaults to true.
	Recursive *bool `yaml:"recursive"`
	// Workers limits how many files are parsed at once. Values below 2 process
	// files strictly one after another.
	Workers int `yaml:"workers"`
	// Delimiter is the CSV field delimiter. Defaults to ','.
	Delimiter string `yaml:"delimiter"`
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool `yaml:"bom"`
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
	// Validate specifies whether rows are checked against the report contract.
	// If nil, defaults to true.
	Validate *bool `yaml:"validate"`
	// SheetName is the worksheet name of xlsx reports.
	SheetName string `yaml:"sheet_name"`

	// Logger receives progress and per-file warnings. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultExtensions are the workbook file extensions scanned by default.
var DefaultExtensions = []string{".twb", ".twbx"}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		Format:     output.FormatCSV,
		Extensions: append([]string(nil), DefaultExtensions...),
		Workers:    1,
		Delimiter:  ",",
		SheetName:  output.DefaultSheetName,
	}
}

// ShouldRecurse returns whether directories are scanned recursively.
func (o Options) ShouldRecurse() bool {
	if o.Recursive != nil {
		return *o.Recursive
	}
	return true
}

// ShouldValidate returns whether rows are validated before writing.
func (o Options) ShouldValidate() bool {
	if o.Validate != nil {
		return *o.Validate
	}
	return true
}

// OutputOptions returns the serializer settings.
func (o Options) OutputOptions() output.Options {
	opts := output.Options{
		BOM:       o.BOM,
		Pretty:    o.Pretty,
		SheetName: o.SheetName,
	}
	if r := []rune(o.Delimiter); len(r) > 0 {
		opts.Delimiter = r[0]
	}
	return opts
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
