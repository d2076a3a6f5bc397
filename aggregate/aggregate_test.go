// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"reflect"
	"testing"

	"github.com/jlorne/timegrid/models"
)

func resp(name string, availability ...string) models.Response {
	return models.Response{Key: name + "-key", Name: name, Availability: availability}
}

func TestTally(t *testing.T) {
	responses := []models.Response{
		resp("A", "d1_09:00"),
		resp("B", "d1_09:00", "d1_09:30"),
	}

	got := Tally(responses)

	want := map[string]SlotTally{
		"d1_09:00": {Count: 2, Names: []string{"A", "B"}},
		"d1_09:30": {Count: 1, Names: []string{"B"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tally = %+v, want %+v", got, want)
	}
}

func TestTallyOmitsUnmarkedSlots(t *testing.T) {
	got := Tally([]models.Response{resp("A", "d1_09:00")})

	if _, present := got["d1_09:30"]; present {
		t.Error("unmarked slot should be absent from the tally, not zero")
	}
}

func TestTallyEmptyAvailability(t *testing.T) {
	// A respondent who marked nothing still counts as a response but
	// contributes to no slot.
	got := Tally([]models.Response{resp("A")})
	if len(got) != 0 {
		t.Errorf("Tally = %+v, want empty map", got)
	}
}

func TestBestSlotsSingleRespondentFloor(t *testing.T) {
	// One respondent marking one slot: that slot holds the maximum count,
	// but a count of 1 never qualifies.
	responses := []models.Response{resp("A", "d1_09:00")}

	if got := BestSlots(responses, DefaultBestThreshold); len(got) != 0 {
		t.Errorf("BestSlots = %v, want empty set", got)
	}
}

func TestBestSlotsNoResponses(t *testing.T) {
	if got := BestSlots(nil, DefaultBestThreshold); len(got) != 0 {
		t.Errorf("BestSlots = %v, want empty set", got)
	}
}

func TestBestSlotsThreshold(t *testing.T) {
	// Counts: 09:00 -> 5, 09:30 -> 4, 10:00 -> 3, 10:30 -> 1.
	// Threshold: ceil(5 * 0.8) = 4, so 09:00 and 09:30 qualify.
	responses := []models.Response{
		resp("A", "d1_09:00", "d1_09:30", "d1_10:00"),
		resp("B", "d1_09:00", "d1_09:30", "d1_10:00"),
		resp("C", "d1_09:00", "d1_09:30", "d1_10:00"),
		resp("D", "d1_09:00", "d1_09:30"),
		resp("E", "d1_09:00", "d1_10:30"),
	}

	got := BestSlots(responses, DefaultBestThreshold)

	want := map[string]bool{"d1_09:00": true, "d1_09:30": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BestSlots = %v, want %v", got, want)
	}
}

func TestBestSlotsCountFloorWithTwoRespondents(t *testing.T) {
	// Max count is 2; ceil(2*0.8) = 2. The shared slot qualifies, the
	// singleton does not.
	responses := []models.Response{
		resp("A", "d1_09:00", "d1_09:30"),
		resp("B", "d1_09:00"),
	}

	got := BestSlots(responses, DefaultBestThreshold)

	want := map[string]bool{"d1_09:00": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BestSlots = %v, want %v", got, want)
	}
}

func TestRankedBestTimes(t *testing.T) {
	dates := []string{"2025-03-14", "2025-03-15"}
	responses := []models.Response{
		resp("A", "2025-03-14_09:00", "2025-03-14_09:30"),
		resp("B", "2025-03-14_09:00", "2025-03-15_09:00"),
		resp("C", "2025-03-14_09:00"),
	}

	got := RankedBestTimes(responses, dates, 30, DefaultRankedLimit)

	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}

	first := got[0]
	if first.SlotID != "2025-03-14_09:00" || first.Count != 3 {
		t.Errorf("top entry = %+v, want 2025-03-14_09:00 with count 3", first)
	}
	if first.Date != "2025-03-14" || first.Time != "09:00" || first.EndTime != "09:30" {
		t.Errorf("top entry fields = %+v", first)
	}
	if first.TotalResponses != 3 {
		t.Errorf("TotalResponses = %d, want 3", first.TotalResponses)
	}
	if !reflect.DeepEqual(first.Names, []string{"A", "B", "C"}) {
		t.Errorf("Names = %v, want response order", first.Names)
	}

	// Counts are non-increasing and ties break on slot ID ascending.
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Count > prev.Count {
			t.Errorf("entries out of order at %d: %+v before %+v", i, prev, cur)
		}
		if cur.Count == prev.Count && cur.SlotID < prev.SlotID {
			t.Errorf("tie-break out of order at %d: %q before %q", i, prev.SlotID, cur.SlotID)
		}
	}
}

func TestRankedBestTimesLimit(t *testing.T) {
	responses := []models.Response{
		resp("A", "2025-03-14_09:00", "2025-03-14_09:30", "2025-03-14_10:00"),
	}

	got := RankedBestTimes(responses, []string{"2025-03-14"}, 30, 2)
	if len(got) != 2 {
		t.Errorf("got %d entries, want limit of 2", len(got))
	}
}

func TestRankedBestTimesIgnoresStraySlotIDs(t *testing.T) {
	responses := []models.Response{
		resp("A", "2025-03-14_09:00", "2099-01-01_09:00", "mangled"),
	}

	got := RankedBestTimes(responses, []string{"2025-03-14"}, 30, DefaultRankedLimit)
	if len(got) != 1 || got[0].SlotID != "2025-03-14_09:00" {
		t.Errorf("got %+v, want only the in-range slot", got)
	}
}

func TestRankedBestTimesEndOfDayWraps(t *testing.T) {
	responses := []models.Response{
		resp("A", "2025-03-14_23:30"),
	}

	got := RankedBestTimes(responses, []string{"2025-03-14"}, 30, DefaultRankedLimit)
	if len(got) != 1 || got[0].EndTime != "00:00" {
		t.Errorf("got %+v, want end time 00:00", got)
	}
}
