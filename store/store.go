// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/jlorne/timegrid/models"
)

var (
	// ErrNotFound means no poll exists for the given id or slug.
	ErrNotFound = errors.New("poll not found")

	// ErrSlugTaken means another poll already holds the slug. Callers
	// regenerate the random suffix and retry.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrRevisionMismatch means the document changed between read and
	// write. Callers re-read, re-apply, and retry the patch.
	ErrRevisionMismatch = errors.New("document revision mismatch")

	// ErrUnavailable wraps transient backend failures. This is the only
	// class worth retrying with backoff.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the document-store collaborator the poll service depends on.
// A poll document is the unit of read and write; Patch replaces the whole
// document, conditional on the revision observed at read time, so concurrent
// writers cannot silently drop each other's responses.
type Store interface {
	// Create persists a new poll, assigns its ID, and returns the stored
	// document at revision 1. Returns ErrSlugTaken on a slug collision.
	Create(ctx context.Context, p *models.Poll) (*models.Poll, error)

	FetchBySlug(ctx context.Context, slug string) (*models.Poll, error)
	FetchByID(ctx context.Context, id string) (*models.Poll, error)

	// Patch replaces the poll document if its current revision equals
	// expectedRev, bumping the revision. Returns ErrRevisionMismatch
	// otherwise.
	Patch(ctx context.Context, id string, p *models.Poll, expectedRev int64) error

	Delete(ctx context.Context, id string) error

	// ListPublic returns discoverable polls, newest first. Unlisted polls
	// are reachable only via their slug.
	ListPublic(ctx context.Context) ([]*models.Poll, error)

	// PurgeExpiredBefore removes polls whose expiry passed before cutoff
	// and reports how many were removed.
	PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int, error)
}
