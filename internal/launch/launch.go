// Package launch opens rendered pages in the user's browser.
package launch

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"

	"github.com/pkg/browser"
)

func init() {
	// xdg-open and friends chatter on stdout, which may be carrying a report.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// FileURL returns a file:// URL for a local path.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

// Open asks the desktop to open the page at path with the platform's
// handler.
func Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := browser.OpenURL(FileURL(path)); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
