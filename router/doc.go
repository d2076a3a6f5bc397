// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the timegrid API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health:

	GET /health

Poll lifecycle:

	POST /polls                - Create poll (returns deleteToken)
	POST /polls/{id}/responses - Submit or update availability
	POST /polls/{id}/delete    - Delete poll (requires deleteToken)

Reads (public):

	GET /polls                 - List public polls
	GET /polls/{slug}          - Poll info and responses
	GET /polls/{slug}/results  - Tally, best slots, ranked suggestions
	GET /polls/{slug}/grid     - Heatmap HTML page

Exports:

	GET /polls/{slug}/export.csv - Slot grid as CSV
	GET /polls/{slug}/export.png - Heatmap screenshot

All routes are wrapped with request logging.
*/
package router
