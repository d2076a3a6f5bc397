// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, dates, time window, slot width, visibility
  - SubmitResponseRequest: name, optional email, availability slot list
  - DeletePollRequest: deleteToken

SubmitResponseRequest.Availability is a pointer slice so a missing or
null field is rejected while an explicit empty list ("available never")
is accepted.

# Response Types

  - CreatePollResponse: id, slug, deleteToken, visibility
  - SubmitResponseResponse: responseCount, updated
  - ErrorResponse: error, message

# Domain Types

  - Poll: the stored poll document, responses included
  - Response: one respondent's entry, keyed by stable Key

Poll.PublicView strips the delete token and respondent emails before a
poll is handed to any caller. Poll.Expired reports read-only state.

# Constants

Visibility values:

	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"

Creation defaults:

	DefaultStartTime   = "09:00"
	DefaultEndTime     = "21:00"
	DefaultSlotMinutes = 30
	DefaultTimezone    = "America/New_York"

Allowed slot widths: 15, 30, 60 minutes.
*/
package models
