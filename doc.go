// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the timegrid API server.

Timegrid is an availability-poll service for scheduling group meetings:
a creator posts candidate dates and a daily time window, respondents mark
the slots they can attend, and the service aggregates overlap into a
heatmap, best-slot list, and ranked suggestions.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - BASE_URL (-base-url): Public base URL used for PNG capture
    (default: http://127.0.0.1:{port})
  - PURGE_RETENTION_DAYS (-purge-days): Days an expired poll is kept
    before the nightly purge removes it (default: 90, 0 disables)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, responses, results, grid, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - session: Poll lifecycle and submission rules
  - store: Document persistence (PostgreSQL JSONB, in-memory for tests)
  - slots: Time-slot generation and identifiers
  - aggregate: Availability tallies and rankings
  - export: CSV and PNG renderings of results
  - models: Request/response and domain types
  - auth: Token and slug generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
