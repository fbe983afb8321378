package twbmeta

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// workbookDoc has three fields: Region used in two worksheets and one
// unused calculation, for three report rows.
const workbookDoc = `<?xml version='1.0' encoding='utf-8' ?>
<workbook>
  <datasources>
    <datasource caption='Orders' name='federated.1'>
      <connection class='federated'>
        <named-connections>
          <named-connection name='sqlserver.1'>
            <connection class='sqlserver' server='db.example.com' dbname='sales' />
          </named-connection>
        </named-connections>
      </connection>
      <column datatype='string' name='[Region]' role='dimension' type='nominal' />
      <column caption='Margin' datatype='real' name='[Calculation_11]' role='measure' type='quantitative'>
        <calculation class='tableau' formula='[Calculation_12] - [Calculation_404]' />
      </column>
    </datasource>
  </datasources>
  <worksheets>
    <worksheet name='Sales Overview'>
      <table><view>
        <datasource-dependencies datasource='federated.1'><column name='[Region]' /></datasource-dependencies>
      </view></table>
    </worksheet>
    <worksheet name='Regional Detail'>
      <table><view>
        <datasource-dependencies datasource='federated.1'><column name='[Region]' /></datasource-dependencies>
      </view></table>
    </worksheet>
  </worksheets>
</workbook>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writePackaged(t *testing.T, path, entry, content string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entry)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	writeFile(t, path, buf.String())
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}
