// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sort"

	"github.com/jlorne/timegrid/aggregate"
	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/models"
	"github.com/jlorne/timegrid/session"
	"github.com/jlorne/timegrid/slots"
)

type ResultsHandler struct {
	svc *session.Service
}

func NewResultsHandler(svc *session.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetPoll handles GET /polls/{slug}
// Returns the poll document for rendering, minus the delete token and
// respondent emails.
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "failed to fetch poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll.PublicView())
}

// ListPolls handles GET /polls
// Only public polls appear here; unlisted ones need their direct link.
func (h *ResultsHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.svc.ListPublic(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to list polls")
		return
	}

	views := []*models.Poll{}
	for _, p := range polls {
		views = append(views, p.PublicView())
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"polls": views,
	})
}

// GetResults handles GET /polls/{slug}/results
// Returns the aggregated view the heatmap and "best times" panel are built
// from: per-slot tallies, the best-slot set, and the ranked list.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "failed to fetch poll for results")
		return
	}

	tallies := aggregate.Tally(poll.Responses)
	best := aggregate.BestSlots(poll.Responses, aggregate.DefaultBestThreshold)
	ranked := aggregate.RankedBestTimes(poll.Responses, poll.Dates, poll.SlotMinutes, aggregate.DefaultRankedLimit)

	bestList := make([]string, 0, len(best))
	for slotID := range best {
		bestList = append(bestList, slotID)
	}
	sort.Strings(bestList)

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"poll":           poll.PublicView(),
		"tally":          tallies,
		"best_slots":     bestList,
		"ranked":         ranked,
		"time_slots":     slots.GenerateTimeSlots(poll.StartTime, poll.EndTime, poll.SlotMinutes),
		"response_count": len(poll.Responses),
	})
}
