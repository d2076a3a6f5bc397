// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Visibility constants
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
)

// Poll defaults applied at creation when the creator leaves them out
const (
	DefaultStartTime   = "09:00"
	DefaultEndTime     = "21:00"
	DefaultSlotMinutes = 30
	DefaultTimezone    = "America/New_York"
)

// ValidSlotMinutes is the enumerated set of allowed slot widths.
var ValidSlotMinutes = map[int]bool{15: true, 30: true, 60: true}

// Request types

type CreatePollRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CreatedBy       string     `json:"createdBy"`
	CreatedByEmail  string     `json:"createdByEmail"`
	ClubID          string     `json:"clubId"`
	Dates           []string   `json:"dates"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	TimeSlotMinutes int        `json:"timeSlotMinutes"`
	Timezone        string     `json:"timezone"`
	Visibility      string     `json:"visibility"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}

// SubmitResponseRequest carries one respondent's availability. Availability is
// a pointer so a missing or null field can be told apart from an empty grid
// (marking zero slots is a valid submission: "available never").
type SubmitResponseRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Availability *[]string `json:"availability"`
}

type DeletePollRequest struct {
	DeleteToken string `json:"deleteToken"`
}

// Response types

type CreatePollResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	DeleteToken string `json:"deleteToken"`
	Visibility  string `json:"visibility"`
}

type SubmitResponseResponse struct {
	ResponseCount int  `json:"responseCount"`
	Updated       bool `json:"updated"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Poll is the stored document for one availability poll. The whole document
// is the unit of persistence; Rev is the store's revision counter and never
// part of the document body.
type Poll struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CreatorName  string     `json:"creator_name"`
	CreatorEmail string     `json:"creator_email,omitempty"`
	ClubID       string     `json:"club_id,omitempty"`
	Dates        []string   `json:"dates"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	SlotMinutes  int        `json:"slot_minutes"`
	Timezone     string     `json:"timezone"`
	Visibility   string     `json:"visibility"`
	DeleteToken  string     `json:"delete_token,omitempty"`
	Responses    []Response `json:"responses"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	Rev int64 `json:"-"`
}

// Response is one respondent's entry in a poll. Key is stable across
// resubmissions; Name is the de-duplication key (case-insensitive, trimmed).
type Response struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Availability []string  `json:"availability"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Expired reports whether the poll is past its expiry instant and therefore
// read-only. A poll with no expiry never expires.
func (p *Poll) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// PublicView returns a copy of the poll safe to hand to any caller: the
// delete token and respondent emails are stripped. The delete token is shown
// exactly once, at creation, and never re-displayed.
func (p *Poll) PublicView() *Poll {
	cp := *p
	cp.DeleteToken = ""
	cp.Responses = make([]Response, len(p.Responses))
	for i, r := range p.Responses {
		r.Email = ""
		cp.Responses[i] = r
	}
	return &cp
}
