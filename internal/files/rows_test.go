package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadRows_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loads.csv")
	content := "Load #,Customer,Total Charges\nAIM_M1,Acme,\"$1,000.00\"\nAIM_M2,Beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Load #", "Customer", "Total Charges"}, rows[0])
	assert.Equal(t, "$1,000.00", rows[1][2])
	assert.Len(t, rows[2], 2, "ragged rows are tolerated")
}

func TestReadRows_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Income"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Drayage Income"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "$500.00"))
	require.NoError(t, f.SaveAs(path))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Income", rows[0][0])
	assert.Equal(t, "$500.00", rows[1][1])
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestDiscovery(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"Aim Trucking Services, Inc._Profit and Loss (10).csv",
		"Aim Trucking Services, Inc._Profit and Loss (9).csv",
		"loads.csv",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	d := NewDiscovery(dir)

	exports, err := d.FindExports(".")
	require.NoError(t, err)
	assert.Len(t, exports, 3, "non-spreadsheet files are ignored")

	statements, err := d.FindStatements(".")
	require.NoError(t, err)
	require.Len(t, statements, 2)
	assert.Contains(t, statements[0].Name, "Profit and Loss")
}
