package exporter

import (
	"strconv"
	"testing"
	"time"

	"PricePredictor/internal/model"
)

func TestFormatRows(t *testing.T) {
	rows := []model.StockRow{
		{StockID: "LSE-1", Timestamp: time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC), Price: 10.0},
		{StockID: "LSE-1", Timestamp: time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC), Price: 10.45},
		{StockID: "LSE-1", Timestamp: time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC), Price: 10.587},
	}
	records := FormatRows(rows)

	want := [][]string{
		{"LSE-1", "05-06-2023", "10.00"},
		{"LSE-1", "06-06-2023", "10.45"},
		{"LSE-1", "07-06-2023", "10.59"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("record %d field %d: expected %q, got %q", i, j, want[i][j], records[i][j])
			}
		}
	}
}

func TestFormatRows_PriceRoundTrip(t *testing.T) {
	prices := []float64{9.9, 11.0, 10.45, 10.59, 0.004, 1234.567}
	for _, p := range prices {
		rows := []model.StockRow{{StockID: "X", Timestamp: time.Now(), Price: p}}
		got := FormatRows(rows)[0][2]
		parsed, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("re-parse %q: %v", got, err)
		}
		rendered := strconv.FormatFloat(parsed, 'f', 2, 64)
		if rendered != got {
			t.Errorf("price %v: formatted %q re-parses to %q", p, got, rendered)
		}
	}
}

func TestFormatRows_Empty(t *testing.T) {
	if got := FormatRows(nil); len(got) != 0 {
		t.Errorf("expected no records for empty input, got %d", len(got))
	}
}
