// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/slots"
)

// DefaultBestThreshold is the fraction of the maximum per-slot count a slot
// must reach to qualify as a best time.
const DefaultBestThreshold = 0.8

// DefaultRankedLimit caps how many entries RankedBestTimes returns.
const DefaultRankedLimit = 10

// SlotTally holds the aggregate for one slot: how many respondents marked it
// and who, in response order.
type SlotTally struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// RankedSlot is one entry of the ranked best-times list.
type RankedSlot struct {
	SlotID         string   `json:"slot_id"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	EndTime        string   `json:"end_time"`
	Count          int      `json:"count"`
	Names          []string `json:"names"`
	TotalResponses int      `json:"total_responses"`
}

// Tally combines all responses into per-slot counts and attendee lists.
// Slots nobody marked are absent from the map; callers must treat "absent"
// and "zero" identically.
func Tally(responses []models.Response) map[string]SlotTally {
	tallies := make(map[string]SlotTally)
	for _, resp := range responses {
		for _, slotID := range resp.Availability {
			cell := tallies[slotID]
			cell.Count++
			cell.Names = append(cell.Names, resp.Name)
			tallies[slotID] = cell
		}
	}
	return tallies
}

// BestSlots returns the set of slots whose count reaches
// ceil(maxCount * threshold). A slot picked by a single respondent never
// qualifies, even when that one pick is the maximum. With no responses, or
// nothing marked at all, the result is empty.
func BestSlots(responses []models.Response, threshold float64) map[string]bool {
	tallies := Tally(responses)

	maxCount := 0
	for _, cell := range tallies {
		if cell.Count > maxCount {
			maxCount = cell.Count
		}
	}

	best := make(map[string]bool)
	if maxCount == 0 {
		return best
	}

	thresholdCount := int(math.Ceil(float64(maxCount) * threshold))
	for slotID, cell := range tallies {
		if cell.Count >= thresholdCount && cell.Count > 1 {
			best[slotID] = true
		}
	}
	return best
}

// RankedBestTimes sorts every marked slot by count descending and truncates
// to limit. Ties break on slot ID ascending, which is stable and
// deterministic across runs. Slot IDs whose date is not in the poll's date
// set are ignored (stray identifiers from a stale client). EndTime is
// time + slotMinutes, for display only.
func RankedBestTimes(responses []models.Response, dates []string, slotMinutes, limit int) []RankedSlot {
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}

	tallies := Tally(responses)

	ranked := []RankedSlot{}
	for slotID, cell := range tallies {
		date, timeOfDay, ok := slots.SplitSlotID(slotID)
		if !ok || !dateSet[date] {
			continue
		}
		ranked = append(ranked, RankedSlot{
			SlotID:         slotID,
			Date:           date,
			Time:           timeOfDay,
			EndTime:        addMinutes(timeOfDay, slotMinutes),
			Count:          cell.Count,
			Names:          cell.Names,
			TotalResponses: len(responses),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].SlotID < ranked[j].SlotID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// addMinutes advances an HH:MM time by n minutes, carrying into the hour.
// A slot ending exactly at midnight renders as 00:00.
func addMinutes(timeOfDay string, n int) string {
	var hour, minute int
	if _, err := fmt.Sscanf(timeOfDay, "%d:%d", &hour, &minute); err != nil {
		return timeOfDay
	}
	total := (hour*60 + minute + n) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
