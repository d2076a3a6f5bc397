// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jlorne/timegrid/auth"
	"github.com/jlorne/timegrid/models"
)

// Postgres stores each poll as a JSONB document row. The handful of columns
// outside the document (slug, visibility, expiry, revision) exist only for
// indexing and conditional writes; the document itself is authoritative.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS poll_doc (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    visibility TEXT NOT NULL DEFAULT 'public',
    expires_at TIMESTAMPTZ,
    rev BIGINT NOT NULL DEFAULT 1,
    doc JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_poll_doc_visibility ON poll_doc(visibility);
CREATE INDEX IF NOT EXISTS idx_poll_doc_expires_at ON poll_doc(expires_at);
`

// CreateSchema creates the poll document table. Safe to call multiple
// times - uses IF NOT EXISTS.
func (s *Postgres) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Postgres) Create(ctx context.Context, p *models.Poll) (*models.Poll, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}

	stored := *p
	stored.ID = id
	stored.Rev = 1

	doc, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode poll document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO poll_doc (id, slug, visibility, expires_at, rev, doc, created_at)
		VALUES ($1, $2, $3, $4, 1, $5, $6)
	`, stored.ID, stored.Slug, stored.Visibility, nullTime(stored.ExpiresAt), doc, stored.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrSlugTaken
		}
		return nil, unavailable("insert poll", err)
	}

	return &stored, nil
}

func (s *Postgres) FetchBySlug(ctx context.Context, slug string) (*models.Poll, error) {
	return s.fetch(ctx, `SELECT doc, rev FROM poll_doc WHERE slug = $1`, slug)
}

func (s *Postgres) FetchByID(ctx context.Context, id string) (*models.Poll, error) {
	return s.fetch(ctx, `SELECT doc, rev FROM poll_doc WHERE id = $1`, id)
}

func (s *Postgres) fetch(ctx context.Context, query, key string) (*models.Poll, error) {
	var doc []byte
	var rev int64
	err := s.db.QueryRowContext(ctx, query, key).Scan(&doc, &rev)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, unavailable("fetch poll", err)
	}

	var p models.Poll
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to decode poll document: %w", err)
	}
	p.Rev = rev
	return &p, nil
}

func (s *Postgres) Patch(ctx context.Context, id string, p *models.Poll, expectedRev int64) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode poll document: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE poll_doc
		SET doc = $1, visibility = $2, expires_at = $3, rev = rev + 1
		WHERE id = $4 AND rev = $5
	`, doc, p.Visibility, nullTime(p.ExpiresAt), id, expectedRev)
	if err != nil {
		return unavailable("patch poll", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("patch poll", err)
	}
	if n == 0 {
		// Either the poll is gone or someone wrote in between; tell the
		// caller which.
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM poll_doc WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return unavailable("patch poll", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrRevisionMismatch
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM poll_doc WHERE id = $1`, id)
	if err != nil {
		return unavailable("delete poll", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("delete poll", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ListPublic(ctx context.Context) ([]*models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT doc, rev FROM poll_doc
		WHERE visibility = $1
		ORDER BY created_at DESC
	`, models.VisibilityPublic)
	if err != nil {
		return nil, unavailable("list polls", err)
	}
	defer rows.Close()

	polls := []*models.Poll{}
	for rows.Next() {
		var doc []byte
		var rev int64
		if err := rows.Scan(&doc, &rev); err != nil {
			return nil, unavailable("list polls", err)
		}
		var p models.Poll
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("failed to decode poll document: %w", err)
		}
		p.Rev = rev
		polls = append(polls, &p)
	}
	return polls, rows.Err()
}

func (s *Postgres) PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM poll_doc WHERE expires_at IS NOT NULL AND expires_at < $1`, cutoff)
	if err != nil {
		return 0, unavailable("purge polls", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, unavailable("purge polls", err)
	}
	return int(n), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}
