// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/jlorne/timegrid/aggregate"
	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/slots"
)

// csvHeader is the fixed header row of every availability export.
var csvHeader = []string{"Date", "Time", "Available Count", "Available Names"}

// ToCSV renders a poll's aggregated availability as RFC-4180 CSV: one row
// per (date, time slot) pair, dates as the outer loop in the poll's stored
// order, times in generation order. Slots nobody marked still get a row with
// a zero count so the export covers the full grid.
func ToCSV(p *models.Poll) ([]byte, error) {
	tallies := aggregate.Tally(p.Responses)
	times := slots.GenerateTimeSlots(p.StartTime, p.EndTime, p.SlotMinutes)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, date := range p.Dates {
		for _, timeOfDay := range times {
			cell := tallies[slots.SlotID(date, timeOfDay)]
			row := []string{
				formatDate(date),
				slots.FormatDisplayTime(timeOfDay),
				strconv.Itoa(cell.Count),
				strings.Join(cell.Names, "; "),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatDate renders an ISO date as "Mar 14, 2025" for the export; a date
// that fails to parse is passed through untouched.
func formatDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("Jan 2, 2006")
}
