// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate computes availability overlap across poll responses.

# Tally

Tally counts, per slot, how many respondents marked it and who:

	tally := aggregate.Tally(responses)
	tally["2025-03-14_09:00"].Count // 3
	tally["2025-03-14_09:00"].Names // ["Alice", "Bob", "Carol"]

Slots nobody marked are absent from the map.

# Best Slots

BestSlots returns the slots whose count reaches a fraction of the
maximum observed count (default threshold 0.8, via ceil). A slot needs
more than one available respondent to qualify, so a single submission
never produces a "best" recommendation.

# Ranked Suggestions

RankedBestTimes produces the ordered suggestion list shown to creators:
slots sorted by count descending, ties broken by slot identifier
ascending, truncated to a limit (default 10). Slot identifiers that do
not belong to the poll's date set are ignored rather than ranked.
*/
package aggregate
