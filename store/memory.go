// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jlorne/timegrid/auth"
	"github.com/jlorne/timegrid/models"
)

// Memory is an in-process Store with the same semantics as the Postgres
// implementation, including slug uniqueness and revision-checked patches.
// It backs the test suite and local development without a database.
type Memory struct {
	mu     sync.Mutex
	polls  map[string]*models.Poll // id -> document
	bySlug map[string]string       // slug -> id
}

func NewMemory() *Memory {
	return &Memory{
		polls:  make(map[string]*models.Poll),
		bySlug: make(map[string]string),
	}
}

func (m *Memory) Create(ctx context.Context, p *models.Poll) (*models.Poll, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.bySlug[p.Slug]; taken {
		return nil, ErrSlugTaken
	}

	stored := clone(p)
	stored.ID = id
	stored.Rev = 1
	m.polls[id] = stored
	m.bySlug[stored.Slug] = id

	return clone(stored), nil
}

func (m *Memory) FetchBySlug(ctx context.Context, slug string) (*models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(m.polls[id]), nil
}

func (m *Memory) FetchByID(ctx context.Context, id string) (*models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.polls[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func (m *Memory) Patch(ctx context.Context, id string, p *models.Poll, expectedRev int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.polls[id]
	if !ok {
		return ErrNotFound
	}
	if current.Rev != expectedRev {
		return ErrRevisionMismatch
	}

	stored := clone(p)
	stored.ID = id
	stored.Slug = current.Slug // slugs are immutable
	stored.Rev = current.Rev + 1
	m.polls[id] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.polls[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.bySlug, p.Slug)
	delete(m.polls, id)
	return nil
}

func (m *Memory) ListPublic(ctx context.Context) ([]*models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	polls := []*models.Poll{}
	for _, p := range m.polls {
		if p.Visibility == models.VisibilityPublic {
			polls = append(polls, clone(p))
		}
	}
	sort.Slice(polls, func(i, j int) bool {
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})
	return polls, nil
}

func (m *Memory) PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for id, p := range m.polls {
		if p.ExpiresAt != nil && p.ExpiresAt.Before(cutoff) {
			delete(m.bySlug, p.Slug)
			delete(m.polls, id)
			purged++
		}
	}
	return purged, nil
}

// clone deep-copies a poll so callers never alias the stored document.
func clone(p *models.Poll) *models.Poll {
	cp := *p
	cp.Responses = make([]models.Response, len(p.Responses))
	for i, r := range p.Responses {
		r.Availability = append([]string(nil), r.Availability...)
		cp.Responses[i] = r
	}
	cp.Dates = append([]string(nil), p.Dates...)
	if p.ExpiresAt != nil {
		t := *p.ExpiresAt
		cp.ExpiresAt = &t
	}
	return &cp
}
