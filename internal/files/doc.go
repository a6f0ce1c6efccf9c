// Package files locates spreadsheet exports on disk and reads them into
// raw rows for the parsing engine. Both CSV and Excel workbooks are
// supported; the engine itself only ever sees [][]string.
package files
