// Package output serializes report rows.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// Format is a report serialization format.
type Format string

const (
	// FormatCSV writes delimited text with a header row.
	FormatCSV Format = "csv"
	// FormatXLSX writes a single-sheet Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes an array of row objects.
	FormatJSON Format = "json"
)

// DefaultSheetName is the worksheet name of xlsx reports.
const DefaultSheetName = "Metadata"

// DefaultBaseName is the report file name used when the output is a directory.
const DefaultBaseName = "tableau_metadata"

// Options configures serialization.
type Options struct {
	// Delimiter is the CSV field delimiter. Zero means ','.
	Delimiter rune
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool
	// Pretty indents JSON output.
	Pretty bool
	// SheetName is the xlsx worksheet name. Empty means DefaultSheetName.
	SheetName string
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be csv, xlsx, or json)", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", false
	}
	return f, true
}

// FileName returns the default report file name for f.
func (f Format) FileName() string {
	return DefaultBaseName + "." + string(f)
}

// Write serializes rows to w in the given format.
func Write(w io.Writer, format Format, rows []models.OutputRow, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows, opts)
	case FormatXLSX:
		return WriteXLSX(w, rows, opts)
	case FormatJSON:
		data, err := ToJSON(rows, opts.Pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}
