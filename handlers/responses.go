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

type ResponseHandler struct {
	svc *session.Service
}

func NewResponseHandler(svc *session.Service) *ResponseHandler {
	return &ResponseHandler{svc: svc}
}

// SubmitResponse handles POST /polls/{id}/responses
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, count, err := h.svc.SubmitResponse(r.Context(), pollID, req)
	if err != nil {
		writeServiceError(w, err, "failed to submit response")
		return
	}

	slog.Info("response submitted",
		"poll_id", pollID,
		"updated", updated,
		"response_count", count,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponseResponse{
		ResponseCount: count,
		Updated:       updated,
	})
}
