// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Default viewport and timeout for grid captures. The width fits a two-week
// poll at 30-minute slots without horizontal clipping.
const (
	DefaultCaptureWidth   = 1200
	DefaultCaptureHeight  = 800
	DefaultCaptureTimeout = 30 * time.Second
)

// CaptureOptions parameterizes one headless-browser screenshot of the
// rendered heatmap grid.
type CaptureOptions struct {
	// URL of the grid page to capture, e.g.
	// "http://127.0.0.1:3318/polls/spring-social-k3j2aa/grid".
	URL string

	// Width and Height are the viewport in pixels; zero values fall back
	// to the defaults above.
	Width  int
	Height int

	// Timeout bounds the whole capture. Zero means DefaultCaptureTimeout.
	Timeout time.Duration
}

// CaptureGridPNG drives a headless Chromium via chromedp: navigate to the
// grid page, wait for its data-ready attribute, screenshot, return the PNG
// bytes. The image is a snapshot of whatever the grid page currently
// renders; the availability data itself is not recomputed here.
func CaptureGridPNG(parentCtx context.Context, opts CaptureOptions) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("capture: URL is required")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultCaptureWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultCaptureHeight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultCaptureTimeout
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(opts.URL),
		// The grid page sets data-ready="true" once the table is in the
		// DOM; wait for it so the shot never races the render.
		chromedp.WaitVisible(`[data-ready="true"]`, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, 100),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}
	return png, nil
}
