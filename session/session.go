// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jlorne/timegrid/auth"
	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/store"
)

var (
	// ErrNotFound means the referenced poll does not exist.
	ErrNotFound = errors.New("poll not found")

	// ErrForbidden means the supplied delete token does not match.
	ErrForbidden = errors.New("delete token mismatch")

	// ErrExpired means the poll is past its expiry and read-only.
	ErrExpired = errors.New("poll is no longer accepting responses")
)

// ValidationError reports a malformed or missing input field. It is never
// retried; the caller fixes the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// slugRetries bounds how many fresh random suffixes are tried when the
// store reports a slug collision.
const slugRetries = 3

// patchRetries bounds how many read-apply-patch rounds a submission makes
// when concurrent writers bump the document revision.
const patchRetries = 3

// Service orchestrates the poll lifecycle against the document store:
// creation, response upserts, and token-gated deletion.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CreatePoll validates the input, fills defaults, derives the slug and
// delete token, and persists the new poll. The returned poll is the only
// place the delete token ever appears.
func (s *Service) CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title", "title is required")
	}
	if strings.TrimSpace(req.CreatedBy) == "" {
		return nil, invalid("createdBy", "creator name is required")
	}
	if len(req.Dates) == 0 {
		return nil, invalid("dates", "at least one date is required")
	}

	dates, err := normalizeDates(req.Dates)
	if err != nil {
		return nil, err
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = models.DefaultStartTime
	}
	endTime := req.EndTime
	if endTime == "" {
		endTime = models.DefaultEndTime
	}
	if startTime >= endTime {
		return nil, invalid("startTime", "start time must be before end time")
	}

	slotMinutes := req.TimeSlotMinutes
	if slotMinutes == 0 {
		slotMinutes = models.DefaultSlotMinutes
	}
	if !models.ValidSlotMinutes[slotMinutes] {
		return nil, invalid("timeSlotMinutes", "slot width must be 15, 30, or 60 minutes")
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = models.DefaultTimezone
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if visibility != models.VisibilityPublic && visibility != models.VisibilityUnlisted {
		return nil, invalid("visibility", "visibility must be public or unlisted")
	}

	deleteToken, err := auth.GenerateDeleteToken()
	if err != nil {
		return nil, err
	}

	poll := &models.Poll{
		Title:        title,
		Description:  req.Description,
		CreatorName:  strings.TrimSpace(req.CreatedBy),
		CreatorEmail: req.CreatedByEmail,
		ClubID:       req.ClubID,
		Dates:        dates,
		StartTime:    startTime,
		EndTime:      endTime,
		SlotMinutes:  slotMinutes,
		Timezone:     timezone,
		Visibility:   visibility,
		DeleteToken:  deleteToken,
		Responses:    []models.Response{},
		ExpiresAt:    req.ExpiresAt,
		CreatedAt:    time.Now().UTC(),
	}

	// The slug suffix is random but not guaranteed unique; on a collision
	// at the store, roll a fresh suffix and try again.
	for attempt := 0; attempt < slugRetries; attempt++ {
		poll.Slug, err = auth.PollSlug(title)
		if err != nil {
			return nil, err
		}

		created, err := s.store.Create(ctx, poll)
		if errors.Is(err, store.ErrSlugTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	return nil, fmt.Errorf("could not find a free slug for %q after %d attempts", title, slugRetries)
}

// SubmitResponse records one respondent's availability. A resubmission under
// the same name (case-insensitive, trimmed) replaces that entry's
// availability in place, keeping its key and list position. The whole
// responses list is the unit of write; a revision-checked patch plus bounded
// retries keeps concurrent submissions from dropping each other.
func (s *Service) SubmitResponse(ctx context.Context, pollID string, req models.SubmitResponseRequest) (updated bool, responseCount int, err error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return false, 0, invalid("name", "name is required")
	}
	if req.Availability == nil {
		return false, 0, invalid("availability", "availability must be a list of slot ids")
	}
	availability := append([]string(nil), (*req.Availability)...)

	for attempt := 0; attempt < patchRetries; attempt++ {
		poll, err := s.store.FetchByID(ctx, pollID)
		if errors.Is(err, store.ErrNotFound) {
			return false, 0, ErrNotFound
		}
		if err != nil {
			return false, 0, err
		}

		if poll.Expired(time.Now()) {
			return false, 0, ErrExpired
		}

		now := time.Now().UTC()
		updated = false
		for i := range poll.Responses {
			if strings.EqualFold(strings.TrimSpace(poll.Responses[i].Name), name) {
				poll.Responses[i].Availability = availability
				poll.Responses[i].SubmittedAt = now
				updated = true
				break
			}
		}
		if !updated {
			poll.Responses = append(poll.Responses, models.Response{
				Key:          uuid.NewString(),
				Name:         name,
				Email:        req.Email,
				Availability: availability,
				SubmittedAt:  now,
			})
		}

		err = s.store.Patch(ctx, pollID, poll, poll.Rev)
		if errors.Is(err, store.ErrRevisionMismatch) {
			continue // someone else wrote; re-read and re-apply
		}
		if errors.Is(err, store.ErrNotFound) {
			// Deleted between read and write; treat like any other
			// missing poll.
			return false, 0, ErrNotFound
		}
		if err != nil {
			return false, 0, err
		}
		return updated, len(poll.Responses), nil
	}
	return false, 0, fmt.Errorf("poll %s: gave up after %d contended write attempts", pollID, patchRetries)
}

// DeletePoll removes a poll if the supplied token matches its delete token.
// Authorization is possession-based: whoever holds the token may delete,
// with no notion of identity.
func (s *Service) DeletePoll(ctx context.Context, pollID, suppliedToken string) error {
	poll, err := s.store.FetchByID(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !auth.MatchDeleteToken(suppliedToken, poll.DeleteToken) {
		return ErrForbidden
	}

	err = s.store.Delete(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// GetPoll fetches a poll by its slug.
func (s *Service) GetPoll(ctx context.Context, slug string) (*models.Poll, error) {
	poll, err := s.store.FetchBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return poll, err
}

// ListPublic returns discoverable polls for the listing page.
func (s *Service) ListPublic(ctx context.Context) ([]*models.Poll, error) {
	return s.store.ListPublic(ctx)
}

// PurgeExpired removes polls whose expiry passed more than retention ago.
// Expired-but-recent polls stay readable; only long-dead ones are removed.
func (s *Service) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	return s.store.PurgeExpiredBefore(ctx, time.Now().Add(-retention))
}

// normalizeDates validates, de-duplicates, and sorts the poll's date set.
// ISO dates sort correctly as strings.
func normalizeDates(raw []string) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	dates := make([]string, 0, len(raw))
	for _, d := range raw {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, invalid("dates", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", d))
		}
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates, nil
}
