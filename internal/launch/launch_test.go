package launch

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileURL(t *testing.T) {
	dir := t.TempDir()
	got := FileURL(filepath.Join(dir, "latest page.html"))

	assert.True(t, strings.HasPrefix(got, "file://"), got)
	assert.True(t, strings.HasSuffix(got, "/latest%20page.html"), got)
}

func TestOpen_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Open(ctx, filepath.Join(t.TempDir(), "page.html"))
	assert.ErrorIs(t, err, context.Canceled)
}
