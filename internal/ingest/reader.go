package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a decoded spreadsheet: one header row plus data rows. Cell values
// are raw strings; no normalization has been applied yet.
type Table struct {
	Headers []string
	Rows    [][]string
}

// DefaultDelimiters is the delimiter guess list used when the caller
// provides none.
var DefaultDelimiters = []rune{',', ';', '\t', '|'}

// ReadDelimited tokenizes delimiter-separated text into a Table. Each
// delimiter in the guess list is tried in order and the one producing the
// widest header row wins. Tokenizer failures are converted into a single
// error rather than propagated as a panic.
func ReadDelimited(text string, delimiters []rune) (*Table, error) {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters
	}

	var best *Table
	for _, delim := range delimiters {
		table, err := tokenize(text, delim)
		if err != nil {
			continue
		}
		if best == nil || len(table.Headers) > len(best.Headers) {
			best = table
		}
	}

	if best == nil {
		return nil, errors.New("could not tokenize input with any candidate delimiter")
	}
	if len(best.Headers) == 0 {
		return nil, errors.New("input contains no header row")
	}
	return best, nil
}

func tokenize(text string, delim rune) (table *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table = nil
			err = fmt.Errorf("tokenizer failure: %v", r)
		}
	}()

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, errors.New("empty input")
	}
	return &Table{Headers: all[0], Rows: all[1:]}, nil
}

// ReadWorkbook decodes the first sheet of an XLSX workbook into a Table.
// Cells are read as formatted strings; raw date serials are handled later by
// the date normalizer.
func ReadWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("sheet contains no rows")
	}

	// GetRows trims trailing empty cells, so rows with a blank last column
	// come back short. Pad them to header width; a blank tail cell is not a
	// malformed row.
	headers := rows[0]
	data := rows[1:]
	for i, row := range data {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			data[i] = padded
		}
	}
	return &Table{Headers: headers, Rows: data}, nil
}
