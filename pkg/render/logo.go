package render

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sync"
)

// nightlyIconNames maps a browser to the icon of its nightly channel.
var nightlyIconNames = map[string]string{
	"brave":      "brave-nightly",
	"chrome":     "chrome-canary",
	"duckduckgo": "duckduckgo",
	"edge":       "edge-canary",
	"firefox":    "firefox-nightly",
	"opera":      "opera-developer",
	"safari":     "safari-technology-preview",
	"tor":        "tor-nightly",
	"vivaldi":    "vivaldi-snapshot",
}

type logoKey struct {
	browser string
	nightly bool
}

// LogoCache resolves browser logos to data: URIs and remembers the result.
// It is safe for concurrent use.
type LogoCache struct {
	dirs []string

	mu    sync.Mutex
	cache map[logoKey]string
}

// NewLogoCache searches dirs in order. In each dir a logo is either
// <name>/<name>_128x128.png or <name>.png.
func NewLogoCache(dirs ...string) *LogoCache {
	return &LogoCache{dirs: dirs, cache: make(map[logoKey]string)}
}

// DataURI returns the logo for a browser as a data: URI, or "" when no logo
// file exists.
func (c *LogoCache) DataURI(browser string, nightly bool) string {
	key := logoKey{browser: browser, nightly: nightly}

	c.mu.Lock()
	defer c.mu.Unlock()
	if uri, ok := c.cache[key]; ok {
		return uri
	}
	uri := c.lookup(IconName(browser, nightly))
	c.cache[key] = uri
	return uri
}

// IconName returns the icon name for a browser, using its nightly channel's
// icon when nightly is set.
func IconName(browser string, nightly bool) string {
	if nightly {
		if name, ok := nightlyIconNames[browser]; ok {
			return name
		}
	}
	return browser
}

func (c *LogoCache) lookup(name string) string {
	if name == "" {
		return ""
	}
	for _, dir := range c.dirs {
		candidates := []string{
			filepath.Join(dir, name, name+"_128x128.png"),
			filepath.Join(dir, name+".png"),
		}
		for _, path := range candidates {
			data, err := os.ReadFile(path) //nolint:gosec // logo dirs come from config
			if err == nil {
				return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
			}
		}
	}
	return ""
}
