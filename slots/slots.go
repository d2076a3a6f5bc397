// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slots

import (
	"fmt"
	"strings"
)

// GenerateTimeSlots produces every wall-clock time t with start <= t < end,
// stepping by slotMinutes, formatted HH:MM zero-padded. The end time itself
// is never included (half-open interval). A start at or after the end yields
// an empty sequence rather than an error; malformed inputs or a non-positive
// step do the same.
func GenerateTimeSlots(startTime, endTime string, slotMinutes int) []string {
	out := []string{}

	start, ok := parseClock(startTime)
	if !ok {
		return out
	}
	end, ok := parseClock(endTime)
	if !ok || slotMinutes <= 0 {
		return out
	}

	for t := start; t < end; t += slotMinutes {
		out = append(out, formatClock(t))
	}
	return out
}

// SlotID builds the identifier for one (date, time) cell: date + "_" + time.
// The format is a wire contract embedded in stored availability lists and
// must not change. No validation happens here; callers supply canonical
// YYYY-MM-DD dates and HH:MM times.
func SlotID(date, timeOfDay string) string {
	return date + "_" + timeOfDay
}

// SplitSlotID is the inverse of SlotID. ok is false if the separator is
// missing.
func SplitSlotID(id string) (date, timeOfDay string, ok bool) {
	return strings.Cut(id, "_")
}

// FormatDisplayTime converts a 24-hour HH:MM string to 12-hour AM/PM form
// for presentation. Identity contracts (slot IDs) always use the 24-hour
// form. Malformed input is returned unchanged.
func FormatDisplayTime(timeOfDay string) string {
	total, ok := parseClock(timeOfDay)
	if !ok {
		return timeOfDay
	}

	hour, minute := total/60, total%60
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func formatClock(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
