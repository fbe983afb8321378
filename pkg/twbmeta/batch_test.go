package twbmeta

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/models"
	"github.com/ukaji3/twbmeta-go/pkg/twbmeta/output"
)

func batchFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-orders.twb"), workbookDoc)
	writeFile(t, filepath.Join(dir, "2-broken.twb"), "<workbook><datasources>")
	writePackaged(t, filepath.Join(dir, "3-packaged.twbx"), "Packaged.twb", workbookDoc)
	return dir
}

func TestRun(t *testing.T) {
	dir := batchFixture(t)

	res, err := Run(context.Background(), []string{dir}, quietOptions())
	require.NoError(t, err)

	assert.Len(t, res.Files, 3)
	table := res.Table
	require.Len(t, table.Rows, 6)
	assert.Equal(t, 2, table.Files)

	for i, row := range table.Rows {
		assert.Equal(t, i+1, row.RowID)
	}
	for _, row := range table.Rows[:3] {
		assert.Equal(t, "1-orders.twb", row.FileName)
	}
	for _, row := range table.Rows[3:] {
		assert.Equal(t, "3-packaged.twbx", row.FileName)
	}

	region := table.Rows[0]
	assert.Equal(t, "Region", region.ColumnName)
	assert.Equal(t, "Sales Overview", region.WorksheetName)
	assert.Equal(t, "db.example.com", region.ConnectionName)
	assert.Equal(t, "Orders", region.ConnectionAlias)
	assert.Equal(t, "Regional Detail", table.Rows[1].WorksheetName)

	margin := table.Rows[2]
	assert.Equal(t, "Margin", margin.ColumnAlias)
	assert.Equal(t, models.StatusUnresolvedReferences, margin.CalcStatus)
	assert.Equal(t, "[Calculation_12] - [Calculation_404]", margin.CalculationFormula)
	assert.Equal(t, models.YesNo(false), margin.Used)

	require.Len(t, table.Failures, 1)
	failure := table.Failures[0]
	assert.Equal(t, filepath.Join(dir, "2-broken.twb"), failure.File)
	assert.ErrorIs(t, failure.Err, ErrInvalidFormat)

	var extractErr *ExtractionError
	require.ErrorAs(t, failure.Err, &extractErr)
	assert.Equal(t, "parse", extractErr.Component)
}

func TestRunConcurrentKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.twb", "b.twb", "c.twb", "d.twb", "e.twb"} {
		writeFile(t, filepath.Join(dir, name), workbookDoc)
	}

	opts := quietOptions()
	opts.Workers = 3
	res, err := Run(context.Background(), []string{dir}, opts)
	require.NoError(t, err)

	require.Len(t, res.Table.Rows, 15)
	for i, row := range res.Table.Rows {
		assert.Equal(t, i+1, row.RowID)
		assert.Equal(t, string(rune('a'+i/3))+".twb", row.FileName)
	}
}

func TestRunEmptyInput(t *testing.T) {
	res, err := Run(context.Background(), []string{t.TempDir()}, quietOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Table.Rows)
	assert.Empty(t, res.Table.Failures)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, res.Table, quietOptions()))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{models.Columns}, records)
}

func TestRunCancelled(t *testing.T) {
	dir := batchFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []string{dir}, quietOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, quietOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestWriteFile(t *testing.T) {
	dir := batchFixture(t)
	res, err := Run(context.Background(), []string{dir}, quietOptions())
	require.NoError(t, err)

	outDir := t.TempDir()
	opts := quietOptions()
	path, err := WriteFile(outDir, res.Table, opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "tableau_metadata.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7)

	opts.Format = output.FormatXLSX
	path, err = WriteFile(filepath.Join(outDir, "report.xlsx"), res.Table, opts)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestWriteFileOutputError(t *testing.T) {
	res, err := Run(context.Background(), []string{batchFixture(t)}, quietOptions())
	require.NoError(t, err)

	_, err = WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "out.csv"), res.Table, quietOptions())
	var outErr *OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Contains(t, outErr.Path, "out.csv")
}

func TestWriteRejectsBrokenSequence(t *testing.T) {
	res, err := Run(context.Background(), []string{batchFixture(t)}, quietOptions())
	require.NoError(t, err)

	res.Table.Rows[0].RowID = 99
	var buf bytes.Buffer
	err = Write(&buf, res.Table, quietOptions())
	var outErr *OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Zero(t, buf.Len())

	opts := quietOptions()
	skip := false
	opts.Validate = &skip
	assert.NoError(t, Write(&buf, res.Table, opts))
}

const unnamedWorksheetDoc = `<workbook>
  <datasources>
    <datasource name='federated.2'>
      <column datatype='string' name='[Region]' role='dimension' />
    </datasource>
  </datasources>
  <worksheets>
    <worksheet>
      <table><view>
        <datasource-dependencies datasource='federated.2'><column name='[Region]' /></datasource-dependencies>
      </view></table>
    </worksheet>
  </worksheets>
</workbook>`

func TestRunSkipsFileBreakingContract(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-good.twb"), workbookDoc)
	writeFile(t, filepath.Join(dir, "2-unnamed.twb"), unnamedWorksheetDoc)

	res, err := Run(context.Background(), []string{dir}, quietOptions())
	require.NoError(t, err)

	table := res.Table
	require.Len(t, table.Rows, 3)
	assert.Equal(t, 1, table.Files)
	for _, row := range table.Rows {
		assert.Equal(t, "1-good.twb", row.FileName)
	}

	require.Len(t, table.Failures, 1)
	failure := table.Failures[0]
	assert.Equal(t, filepath.Join(dir, "2-unnamed.twb"), failure.File)
	assert.ErrorIs(t, failure.Err, ErrInvalidFormat)
	var extractErr *ExtractionError
	require.ErrorAs(t, failure.Err, &extractErr)
	assert.Equal(t, "validate", extractErr.Component)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table, quietOptions()))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestRunWithoutValidationKeepsEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-good.twb"), workbookDoc)
	writeFile(t, filepath.Join(dir, "2-unnamed.twb"), unnamedWorksheetDoc)

	opts := quietOptions()
	skip := false
	opts.Validate = &skip

	res, err := Run(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	assert.Len(t, res.Table.Rows, 4)
	assert.Empty(t, res.Table.Failures)
	assert.NoError(t, Write(io.Discard, res.Table, opts))
}
