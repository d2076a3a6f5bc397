// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jlorne/timegrid/aggregate"
	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/session"
	"github.com/jlorne/timegrid/slots"
)

// The grid page is a self-contained server-rendered heatmap. It exists for
// two audiences: humans opening a poll link without the frontend, and the
// PNG capture, which waits on the data-ready attribute before its
// screenshot.
const gridTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 24px; color: #1a1a2e; }
h1 { font-size: 20px; margin-bottom: 4px; }
p.sub { color: #666; margin-top: 0; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d0e0; padding: 6px 10px; font-size: 13px; text-align: center; }
th { background: #f4f4fa; }
td.slot { min-width: 72px; }
</style>
</head>
<body>
<div data-ready="true">
<h1>{{.Title}}</h1>
<p class="sub">{{.ResponseCount}} response{{if ne .ResponseCount 1}}s{{end}}</p>
<table>
<tr><th>Time</th>{{range .Dates}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><th>{{.Label}}</th>{{range .Cells}}<td class="slot" style="background: rgba(46, 125, 50, {{.Shade}})" title="{{.Names}}">{{.Count}}</td>{{end}}</tr>
{{end}}</table>
</div>
</body>
</html>`

var gridTmpl = template.Must(template.New("grid").Parse(gridTemplate))

type gridCell struct {
	Count int
	Shade string
	Names string
}

type gridRow struct {
	Label string
	Cells []gridCell
}

type gridData struct {
	Title         string
	ResponseCount int
	Dates         []string
	Rows          []gridRow
}

type GridHandler struct {
	svc *session.Service
}

func NewGridHandler(svc *session.Service) *GridHandler {
	return &GridHandler{svc: svc}
}

// GetGrid handles GET /polls/{slug}/grid
func (h *GridHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, "failed to fetch poll for grid")
		return
	}

	tallies := aggregate.Tally(poll.Responses)

	maxCount := 0
	for _, cell := range tallies {
		if cell.Count > maxCount {
			maxCount = cell.Count
		}
	}

	data := gridData{
		Title:         poll.Title,
		ResponseCount: len(poll.Responses),
		Dates:         poll.Dates,
	}
	for _, timeOfDay := range slots.GenerateTimeSlots(poll.StartTime, poll.EndTime, poll.SlotMinutes) {
		row := gridRow{Label: slots.FormatDisplayTime(timeOfDay)}
		for _, date := range poll.Dates {
			cell := tallies[slots.SlotID(date, timeOfDay)]
			row.Cells = append(row.Cells, gridCell{
				Count: cell.Count,
				Shade: shade(cell.Count, maxCount),
				Names: strings.Join(cell.Names, ", "),
			})
		}
		data.Rows = append(data.Rows, row)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := gridTmpl.Execute(w, data); err != nil {
		slog.Error("failed to render grid", "error", err, "slug", slug)
	}
}

// shade maps a cell count to a heatmap opacity between 0 and 0.85.
func shade(count, maxCount int) string {
	if maxCount == 0 || count == 0 {
		return "0"
	}
	return strconv.FormatFloat(0.85*float64(count)/float64(maxCount), 'f', 2, 64)
}
