package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadDelimitedGuessesDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"comma", "Ticket ID,Request Time,Status\nINC-1,15/01/2025,Open\n"},
		{"semicolon", "Ticket ID;Request Time;Status\nINC-1;15/01/2025;Open\n"},
		{"tab", "Ticket ID\tRequest Time\tStatus\nINC-1\t15/01/2025\tOpen\n"},
		{"pipe", "Ticket ID|Request Time|Status\nINC-1|15/01/2025|Open\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := ReadDelimited(tc.text, nil)
			if err != nil {
				t.Fatalf("ReadDelimited: %v", err)
			}
			if len(table.Headers) != 3 {
				t.Fatalf("headers = %v, want 3 columns", table.Headers)
			}
			if len(table.Rows) != 1 || table.Rows[0][0] != "INC-1" {
				t.Fatalf("rows = %v", table.Rows)
			}
		})
	}
}

func TestReadDelimitedRaggedRows(t *testing.T) {
	table, err := ReadDelimited("a,b,c\n1,2\n1,2,3,4\n", nil)
	if err != nil {
		t.Fatalf("ReadDelimited: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %v", table.Rows)
	}
	if len(table.Rows[0]) != 2 || len(table.Rows[1]) != 4 {
		t.Fatalf("ragged rows not preserved: %v", table.Rows)
	}
}

func TestReadDelimitedEmptyInput(t *testing.T) {
	if _, err := ReadDelimited("", nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Ticket ID", "Request Time", "Priority"},
		{"INC-1", "15/01/2025", "P1"},
		{"INC-2", "16/01/2025", "High"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	table, err := ReadWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(table.Headers) != 3 || table.Headers[0] != "Ticket ID" {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 || table.Rows[1][2] != "High" {
		t.Fatalf("rows = %v", table.Rows)
	}
}

func TestReadWorkbookPadsTrailingBlankCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Ticket ID", "Request Time", "Close Time"},
		{"INC-1", "15/01/2025", ""},
		{"INC-2", "16/01/2025", "17/01/2025"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	table, err := ReadWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	for i, row := range table.Rows {
		if len(row) != len(table.Headers) {
			t.Errorf("row %d has %d cells, want %d", i, len(row), len(table.Headers))
		}
	}

	// A blank close time must not read as a malformed row downstream.
	result := NewParserWithClock(fixedClock).Parse(table)
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if len(result.Records) != 2 {
		t.Fatalf("parsed %d records, want 2", len(result.Records))
	}
	if result.Records[0].CloseTime != nil {
		t.Errorf("blank close time parsed as %v", result.Records[0].CloseTime)
	}
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	if _, err := ReadWorkbook(bytes.NewReader([]byte("not a zip archive"))); err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
}
