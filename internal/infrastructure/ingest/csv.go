package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

// ReadCustomersCSV decodes the customers CSV file into a RawTable. The first
// record is the header; every later record maps to it by position. Cells stay
// exactly as written, so identifier-looking values such as customer IDs and
// mobile numbers are never reinterpreted as numbers.
func ReadCustomersCSV(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.NewParseError(path, 0, "", err)
	}
	defer f.Close()
	return DecodeCSV(path, f)
}

// DecodeCSV decodes CSV content from r, labelling errors with source.
func DecodeCSV(source string, r io.Reader) (*RawTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, apperror.NewParseError(source, 0, "", err)
	}
	if len(records) == 0 {
		return nil, apperror.NewParseError(source, 0, "", errors.New("empty file, header row required"))
	}

	header := records[0]
	// A UTF-8 BOM, when present, sticks to the first header cell.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	table := &RawTable{Source: source, Columns: header}
	for i, rec := range records[1:] {
		row := RawRow{Index: i + 1, Values: make(map[string]string, len(header))}
		for j, col := range header {
			row.Values[col] = rec[j]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
