// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the timegrid API.

# Handler Types

Each handler is a struct holding its service dependency:

  - PollHandler: Poll lifecycle (create, delete)
  - ResponseHandler: Availability submission
  - ResultsHandler: Poll info, listing, and aggregated results
  - GridHandler: Server-rendered heatmap page
  - ExportHandler: CSV and PNG downloads

Handlers are created via constructor functions that accept the session
service (and config where needed):

	pollHandler := handlers.NewPollHandler(svc)
	exportHandler := handlers.NewExportHandler(svc, cfg)

# Poll Lifecycle

	POST /polls               → CreatePoll (returns deleteToken, shown once)
	POST /polls/{id}/responses → SubmitResponse (upsert by name)
	POST /polls/{id}/delete    → DeletePoll (requires deleteToken)

# Reads and Exports

	GET /polls                     → ListPolls (public polls only)
	GET /polls/{slug}              → GetPoll (token and emails stripped)
	GET /polls/{slug}/results      → GetResults (tally, best, ranked)
	GET /polls/{slug}/grid         → GetGrid (heatmap HTML)
	GET /polls/{slug}/export.csv   → ExportCSV
	GET /polls/{slug}/export.png   → ExportPNG (headless capture of the grid)

# Error Mapping

Service errors map to HTTP statuses in one place (errors.go):

	*ValidationError → 400
	ErrNotFound      → 404
	ErrForbidden     → 403
	ErrExpired       → 409
	anything else    → 500 (logged)
*/
package handlers
