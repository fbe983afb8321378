package twbmeta

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/parser"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/report"
)

// Extract parses the workbook at path.
func Extract(path string) (*models.Workbook, error) {
	wb, err := parser.Open(path)
	switch {
	case err == nil:
		return wb, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, NewExtractionError(path, "open", fmt.Errorf("%w: %w", ErrFileNotFound, err))
	case errors.Is(err, parser.ErrMalformed), errors.Is(err, parser.ErrNoWorkbookEntry):
		return nil, NewExtractionError(path, "parse", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	default:
		return nil, NewExtractionError(path, "open", err)
	}
}

// ExtractRows parses the workbook at path and assembles its report rows.
func ExtractRows(path string) report.FileResult {
	wb, err := Extract(path)
	if err != nil {
		return report.Failed(path, err)
	}
	return report.Ok(path, report.Assemble(wb))
}
