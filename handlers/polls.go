// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/session"
)

type PollHandler struct {
	svc *session.Service
}

func NewPollHandler(svc *session.Service) *PollHandler {
	return &PollHandler{svc: svc}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.svc.CreatePoll(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "slug", poll.Slug, "creator", poll.CreatorName)

	// The delete token appears in this response and nowhere else; the
	// creator's browser is responsible for holding on to it.
	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		ID:          poll.ID,
		Slug:        poll.Slug,
		DeleteToken: poll.DeleteToken,
		Visibility:  poll.Visibility,
	})
}

// DeletePoll handles POST /polls/{id}/delete
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.DeletePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.DeletePoll(r.Context(), pollID, req.DeleteToken); err != nil {
		writeServiceError(w, err, "failed to delete poll")
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
