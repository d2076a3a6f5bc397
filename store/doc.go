// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls as whole documents.

# Store Interface

The Store interface covers the document operations the service needs:

	Create, FetchBySlug, FetchByID, Patch, Delete,
	ListPublic, PurgeExpiredBefore

Patch is conditional on the revision the caller read; a concurrent
writer causes ErrRevisionMismatch and the caller retries from a fresh
read.

# PostgreSQL

NewPostgres stores each poll as a JSONB document in one table, with
slug, visibility, expiry, and revision lifted into columns for
indexing:

	st := store.NewPostgres(dbConn)
	err := st.CreateSchema(ctx)

CreateSchema is safe to call multiple times (IF NOT EXISTS).

# In-Memory

NewMemory is a mutex-guarded map implementation with the same
semantics, used by tests so they run without a database.

# Errors

  - ErrNotFound: no document with that ID or slug
  - ErrSlugTaken: unique slug violation on Create
  - ErrRevisionMismatch: conditional Patch lost the race
  - ErrUnavailable: the backing database failed; wrapped with detail
*/
package store
