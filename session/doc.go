// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements poll lifecycle rules on top of a store.

# Service

Service wraps a store.Store and enforces validation, expiry, and
submission semantics:

	svc := session.NewService(st)
	poll, err := svc.CreatePoll(ctx, req)

# Creation

CreatePoll validates the request (title, creator, dates, time window,
slot width, visibility), normalizes dates (deduplicated, sorted), fills
defaults, and mints the slug and delete token. Slug collisions are
retried with a fresh suffix a bounded number of times.

# Submission

SubmitResponse upserts by respondent name, case-insensitively on the
trimmed name. A resubmission replaces availability in place, keeping
the respondent's original key, display name, and list position. An
empty availability list is a valid submission. Expired polls reject
submissions with ErrExpired but stay readable.

Concurrent submissions are serialized through the store's revision
check: the service re-reads and re-applies on ErrRevisionMismatch, a
few times, so no submission is silently lost.

# Deletion

DeletePoll requires the creation-time delete token, compared in
constant time. A wrong token returns ErrForbidden and leaves the poll
untouched.

# Errors

Callers distinguish outcomes by sentinel or type:

  - *ValidationError: a named field failed validation
  - ErrNotFound: no poll with that ID or slug
  - ErrForbidden: delete token mismatch
  - ErrExpired: poll no longer accepts submissions
*/
package session
