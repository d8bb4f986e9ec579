// Package preview captures a PNG preview of a rendered page with headless
// Chrome, for use as the page's link-preview image.
package preview

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

// Options controls the capture.
type Options struct {
	Width      int64
	Height     int64
	ChromePath string // empty uses chromedp's lookup
	Timeout    time.Duration
}

// DefaultOptions matches the usual link-preview image size.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 630, Timeout: 30 * time.Second}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	return o
}

func allocatorOptions(o Options) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.WindowSize(int(o.Width), int(o.Height)),
	)
	if o.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(o.ChromePath))
	}
	return opts
}

// Capture loads pageURL and writes a viewport screenshot to pngPath.
func Capture(ctx context.Context, pageURL, pngPath string, opts Options) error {
	opts = opts.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(opts)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(opts.Width, opts.Height),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return fmt.Errorf("capture preview of %s: %w", pageURL, err)
	}
	if err := os.WriteFile(pngPath, png, 0o644); err != nil { //nolint:gosec // preview is published with the page
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}
