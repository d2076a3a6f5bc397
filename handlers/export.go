// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jlorne/timegrid/cliparse"
	"github.com/jlorne/timegrid/export"
	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/session"
)

type ExportHandler struct {
	svc *session.Service
	cfg cliparse.Config
}

func NewExportHandler(svc *session.Service, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{svc: svc, cfg: cfg}
}

// ExportCSV handles GET /polls/{slug}/export.csv
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "failed to fetch poll for export")
		return
	}

	data, err := export.ToCSV(poll)
	if err != nil {
		slog.Error("failed to encode CSV", "error", err, "slug", slug)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug+`.csv"`)
	w.Write(data)
}

// ExportPNG handles GET /polls/{slug}/export.png
// Screenshots this server's own grid page for the poll through a headless
// browser, so the download matches the rendered heatmap pixel for pixel.
func (h *ExportHandler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	// Resolve the poll first so a bad slug is a 404, not a capture error.
	if _, err := h.svc.GetPoll(r.Context(), slug); err != nil {
		writeServiceError(w, err, "failed to fetch poll for export")
		return
	}

	png, err := export.CaptureGridPNG(r.Context(), export.CaptureOptions{
		URL: h.cfg.BaseURL + "/polls/" + slug + "/grid",
	})
	if err != nil {
		slog.Error("failed to capture grid", "error", err, "slug", slug)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build export")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug+`.png"`)
	w.Write(png)
}
