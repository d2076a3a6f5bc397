// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slots generates and names the time slots of a poll day.

# Slot Generation

GenerateTimeSlots expands a daily window into slot start times:

	times := slots.GenerateTimeSlots("09:00", "12:00", 30)
	// ["09:00", "09:30", "10:00", "10:30", "11:00", "11:30"]

The window is half-open: a slot starts strictly before endTime, so
"09:00"–"10:00" at 30 minutes yields exactly two slots. A window with
startTime >= endTime yields no slots.

# Slot Identifiers

A slot is addressed by date and start time joined with an underscore:

	id := slots.SlotID("2025-03-14", "09:30")   // "2025-03-14_09:30"
	date, tm, ok := slots.SplitSlotID(id)

# Display Formatting

FormatDisplayTime converts 24-hour clock strings to a 12-hour form for
exports ("14:30" → "2:30 PM"). Malformed input passes through unchanged.
*/
package slots
