// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and slug generation utilities.

# Delete Tokens

Delete tokens are random 16-byte secrets, hex encoded:

	token, err := auth.GenerateDeleteToken()
	ok := auth.MatchDeleteToken(stored, presented)

MatchDeleteToken compares in constant time. The token is handed to the
creator exactly once, at poll creation, and is the only credential for
deleting the poll.

# Poll Slugs

PollSlug creates the URL identifier for a poll:

	slug, err := auth.PollSlug("Spring Officer Sync")
	// "spring-officer-sync-k29dm1"

The title is slugified and truncated, then a short random base-36
suffix is appended so two polls with the same title get distinct URLs.
Uniqueness is still enforced by the store; callers retry with a fresh
suffix on collision.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
