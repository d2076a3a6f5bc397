// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders poll results for download.

# CSV

ToCSV writes the full slot grid, one row per slot including slots
nobody marked:

	Date,Time,Available Count,Available Names
	"Mar 14, 2025",9:00 AM,3,Alice; Bob; Carol
	"Mar 14, 2025",9:30 AM,0,

# PNG

CaptureGridPNG screenshots the server's own grid page with headless
Chromium, waiting for the page to flag itself ready:

	png, err := export.CaptureGridPNG(ctx, export.CaptureOptions{URL: url})

The grid page marks readiness with a data-ready="true" attribute once
rendered. Capture requires a Chromium binary on the host.
*/
package export
