package dataset

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csv := "date,revenue,customer_id\n" +
		"2024-01-01,120.50,C001\n" +
		"2024-01-02,98.00,C002\n"

	d, err := ParseCSV("sales.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.FileName != "sales.csv" {
		t.Errorf("expected file name sales.csv, got %q", d.FileName)
	}
	if d.RowCount != 2 {
		t.Errorf("expected 2 rows, got %d", d.RowCount)
	}
	if len(d.Schema) != 3 || d.Schema[0] != "date" || d.Schema[2] != "customer_id" {
		t.Errorf("unexpected schema: %v", d.Schema)
	}
	if len(d.Sample) != 2 {
		t.Fatalf("expected 2 sample rows, got %d", len(d.Sample))
	}
	if d.Sample[0]["revenue"] != "120.50" {
		t.Errorf("expected revenue 120.50 in first row, got %q", d.Sample[0]["revenue"])
	}
}

func TestParseCSV_SampleBounded(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id,value\n")
	for i := 0; i < SampleLimit+25; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i, i*10)
	}

	d, err := ParseCSV("big.csv", strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.RowCount != SampleLimit+25 {
		t.Errorf("expected row count %d, got %d", SampleLimit+25, d.RowCount)
	}
	if len(d.Sample) != SampleLimit {
		t.Errorf("expected sample capped at %d, got %d", SampleLimit, len(d.Sample))
	}
	// Sample keeps the first rows in file order.
	if d.Sample[0]["id"] != "0" || d.Sample[SampleLimit-1]["id"] != fmt.Sprint(SampleLimit-1) {
		t.Errorf("sample not in file order: first=%q last=%q", d.Sample[0]["id"], d.Sample[SampleLimit-1]["id"])
	}
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV("empty.csv", strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestParseCSV_DuplicateColumn(t *testing.T) {
	_, err := ParseCSV("dup.csv", strings.NewReader("a,b,a\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for duplicate column")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate column error, got: %v", err)
	}
}

func TestParseCSV_EmptyColumnName(t *testing.T) {
	_, err := ParseCSV("blank.csv", strings.NewReader("a,,c\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for empty column name")
	}
}

func TestParseCSV_RaggedRow(t *testing.T) {
	_, err := ParseCSV("ragged.csv", strings.NewReader("a,b\n1,2\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	d, err := ParseCSV("header.csv", strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.RowCount != 0 {
		t.Errorf("expected 0 rows, got %d", d.RowCount)
	}
	if len(d.Sample) != 0 {
		t.Errorf("expected empty sample, got %d rows", len(d.Sample))
	}
}
