package parser

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"
)

// readPackagedWorkbook returns the content of the workbook entry of a .twbx archive.
func readPackagedWorkbook(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	name := findWorkbookEntry(zr)
	if name == "" {
		return nil, ErrNoWorkbookEntry
	}
	return readZipFile(zr, name)
}

// findWorkbookEntry picks the shallowest .twb entry, ties broken by name.
func findWorkbookEntry(r *zip.Reader) string {
	var candidates []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(f.Name), ".twb") {
			candidates = append(candidates, f.Name)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		di, dj := strings.Count(candidates[i], "/"), strings.Count(candidates[j], "/")
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})
	return candidates[0]
}

// readZipFile reads a file from a zip archive.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, ErrNoWorkbookEntry
}
