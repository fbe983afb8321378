package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// WriteCSV writes the header and rows as delimited text. Fields containing
// the delimiter, quotes or line breaks are quoted.
func WriteCSV(w io.Writer, rows []models.OutputRow, opts Options) error {
	var closer io.Closer
	if opts.BOM {
		tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		w, closer = tw, tw
	}

	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}

	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("writing row %d: %w", row.RowID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if closer != nil {
		return closer.Close()
	}
	return nil
}
