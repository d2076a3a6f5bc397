// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/session"
)

// writeServiceError translates the session layer's error taxonomy to HTTP.
// Validation problems carry their field message to the client; anything
// unrecognized is a 500 with the detail kept server-side.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	var vErr *session.ValidationError
	switch {
	case errors.As(err, &vErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, session.ErrForbidden):
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid delete token")
	case errors.Is(err, session.ErrExpired):
		middleware.ErrorResponse(w, http.StatusConflict, "Poll is no longer accepting responses")
	default:
		slog.Error(op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
	}
}
