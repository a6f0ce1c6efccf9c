package files

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"aimdash/internal/errors"
)

// ReadRows reads a spreadsheet export into raw rows. CSV files are read
// with lax quoting and ragged record lengths, since the exports are
// human-edited; .xlsx/.xls workbooks are read from their first sheet.
func ReadRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readWorkbookRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open export file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV export", err)
	}
	return rows, nil
}

func readWorkbookRows(path string) ([][]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError("failed to read workbook rows", err)
	}
	return rows, nil
}
