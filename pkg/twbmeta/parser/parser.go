// Package parser reads Tableau workbook documents (.twb and .twbx).
package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
)

// ErrMalformed indicates the document is not a readable workbook.
var ErrMalformed = errors.New("malformed workbook document")

// ErrNoWorkbookEntry indicates a packaged workbook has no .twb entry.
var ErrNoWorkbookEntry = errors.New("no .twb entry in packaged workbook")

// Open parses the workbook at path. Files ending in .twbx are treated as
// packaged workbooks, anything else as a plain .twb document.
func Open(path string) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(path), ".twbx") {
		return Parse(f, name)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return ParsePackaged(f, info.Size(), name)
}

// ParsePackaged parses the workbook document stored inside a .twbx archive.
func ParsePackaged(r io.ReaderAt, size int64, fileName string) (*models.Workbook, error) {
	data, err := readPackagedWorkbook(r, size)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data), fileName)
}

// Parse reads a .twb document from r. fileName is recorded on the workbook.
func Parse(r io.Reader, fileName string) (*models.Workbook, error) {
	decoder := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	decoder.CharsetReader = charsetReader

	b := newBuilder(fileName)
	var (
		stack   []string
		sawRoot bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 && t.Name.Local != "workbook" {
				return nil, fmt.Errorf("%w: root element is <%s>", ErrMalformed, t.Name.Local)
			}
			sawRoot = true
			switch {
			case t.Name.Local == "datasource" && under(stack, "workbook", "datasources"):
				var ds xmlDatasource
				if err := decoder.DecodeElement(&ds, &t); err != nil {
					return nil, fmt.Errorf("%w: datasource: %w", ErrMalformed, err)
				}
				b.addDatasource(ds)
				continue
			case t.Name.Local == "worksheet" && under(stack, "workbook", "worksheets"):
				refs, err := parseWorksheet(decoder, t)
				if err != nil {
					return nil, fmt.Errorf("%w: worksheet: %w", ErrMalformed, err)
				}
				b.addWorksheet(refs)
				continue
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	return b.workbook(), nil
}

// under reports whether stack is exactly path.
func under(stack []string, path ...string) bool {
	if len(stack) != len(path) {
		return false
	}
	for i := range path {
		if stack[i] != path[i] {
			return false
		}
	}
	return true
}

// charsetReader decodes documents declaring a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
