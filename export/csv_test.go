// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/jlorne/timegrid/models"
)

func testPoll() *models.Poll {
	return &models.Poll{
		Title:       "Export Test",
		Dates:       []string{"2025-03-14"},
		StartTime:   "09:00",
		EndTime:     "10:00",
		SlotMinutes: 30,
		Responses: []models.Response{
			{
				Key:          "k1",
				Name:         "Alice",
				Availability: []string{"2025-03-14_09:00", "2025-03-14_09:30"},
			},
		},
	}
}

func parseCSV(t *testing.T, raw []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	return records
}

func TestToCSV(t *testing.T) {
	raw, err := ToCSV(testPoll())
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	records := parseCSV(t, raw)

	// Header plus one row per generated slot.
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(records))
	}
	if !reflect.DeepEqual(records[0], []string{"Date", "Time", "Available Count", "Available Names"}) {
		t.Errorf("header = %v", records[0])
	}

	for _, row := range records[1:] {
		if row[2] != "1" {
			t.Errorf("available count = %q, want \"1\" in row %v", row[2], row)
		}
		if row[3] != "Alice" {
			t.Errorf("names = %q, want Alice", row[3])
		}
	}

	if records[1][0] != "Mar 14, 2025" {
		t.Errorf("date column = %q", records[1][0])
	}
	if records[1][1] != "9:00 AM" || records[2][1] != "9:30 AM" {
		t.Errorf("time columns = %q, %q", records[1][1], records[2][1])
	}
}

func TestToCSVFullGrid(t *testing.T) {
	p := testPoll()
	p.Dates = []string{"2025-03-14", "2025-03-15"}
	p.Responses = nil

	raw, err := ToCSV(p)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	records := parseCSV(t, raw)

	// 2 dates x 2 slots, all zero-count but present.
	if len(records) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(records))
	}
	for _, row := range records[1:] {
		if row[2] != "0" || row[3] != "" {
			t.Errorf("empty grid row = %v", row)
		}
	}
}

func TestToCSVQuotesCommas(t *testing.T) {
	p := testPoll()
	p.Responses = []models.Response{
		{Key: "k1", Name: "Lee, Jamie", Availability: []string{"2025-03-14_09:00"}},
		{Key: "k2", Name: "Sam", Availability: []string{"2025-03-14_09:00"}},
	}

	raw, err := ToCSV(p)
	if err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	// The reader must round-trip the comma-bearing name intact.
	records := parseCSV(t, raw)
	if records[1][3] != "Lee, Jamie; Sam" {
		t.Errorf("names = %q, want comma-bearing name quoted and joined", records[1][3])
	}
}

func TestCaptureRequiresURL(t *testing.T) {
	if _, err := CaptureGridPNG(t.Context(), CaptureOptions{}); err == nil {
		t.Error("expected an error for empty URL")
	}
}
