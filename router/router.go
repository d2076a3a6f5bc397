// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jlorne/timegrid/cliparse"
	"github.com/jlorne/timegrid/handlers"
	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/session"
)

func NewRouter(svc *session.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc)
	responseHandler := handlers.NewResponseHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)
	gridHandler := handlers.NewGridHandler(svc)
	exportHandler := handlers.NewExportHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("POST /polls/{id}/responses", middleware.WithLogging(responseHandler.SubmitResponse))
	mux.HandleFunc("POST /polls/{id}/delete", middleware.WithLogging(pollHandler.DeletePoll))

	// Reads
	mux.HandleFunc("GET /polls", middleware.WithLogging(resultsHandler.ListPolls))
	mux.HandleFunc("GET /polls/{slug}", middleware.WithLogging(resultsHandler.GetPoll))
	mux.HandleFunc("GET /polls/{slug}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /polls/{slug}/grid", middleware.WithLogging(gridHandler.GetGrid))

	// Exports
	mux.HandleFunc("GET /polls/{slug}/export.csv", middleware.WithLogging(exportHandler.ExportCSV))
	mux.HandleFunc("GET /polls/{slug}/export.png", middleware.WithLogging(exportHandler.ExportPNG))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("timegrid API v1"))
	})

	return mux
}
