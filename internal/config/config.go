package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// the user config directory.
const FileName = ".ptreport.yaml"

// Constants for default values.
const (
	DefaultResultsDir      = "results"
	DefaultIssueNumberFile = "issue-number"
	DefaultRepoURL         = "https://github.com/privacytests/privacytests.org"
	DefaultLocale          = "en"
	DefaultTheme           = "default"
)

// Config is the application's configuration from .ptreport.yaml.
type Config struct {
	ResultsDir      string   `yaml:"results_dir"`
	SectionsFile    string   `yaml:"sections_file,omitempty"`
	LogoDirs        []string `yaml:"logo_dirs"`
	Stylesheets     []string `yaml:"stylesheets,omitempty"`
	IssueNumberFile string   `yaml:"issue_number_file"`
	RepoURL         string   `yaml:"repo_url"`
	Locale          string   `yaml:"locale"`
	Theme           string   `yaml:"theme"`
	Aggregate       bool     `yaml:"aggregate"`
	Preview         bool     `yaml:"preview"`
	ChromePath      string   `yaml:"chrome_path,omitempty"`
	NoColor         bool     `yaml:"no_color"`
	Debug           bool     `yaml:"debug"`
}

// Default returns the hardcoded configuration.
func Default() *Config {
	return &Config{
		ResultsDir:      DefaultResultsDir,
		LogoDirs:        []string{"node_modules/browser-logos/src", "assets/icons"},
		IssueNumberFile: DefaultIssueNumberFile,
		RepoURL:         DefaultRepoURL,
		Locale:          DefaultLocale,
		Theme:           DefaultTheme,
		Aggregate:       true,
		Preview:         true,
	}
}

// Load returns the defaults overlaid with the config file, if one is found.
// It also returns the path of the file used, or "" for none.
func Load() (*Config, string, error) {
	cfg := Default()
	path := getConfigPath()
	if path == "" {
		return cfg, "", nil
	}
	if err := cfg.LoadFile(path); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // config path is local or XDG
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PTREPORT_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv("PTREPORT_LOCALE"); v != "" {
		c.Locale = v
	}
	var errs []error
	for name, dst := range map[string]*bool{
		"PTREPORT_DEBUG": &c.Debug,
		"NO_COLOR":       &c.NoColor,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		*dst = b
	}
	return errors.Join(errs...)
}

// LocaleTag returns the collation locale. An unparsable locale falls back
// to English.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// ThemeName returns the theme to use, honoring NoColor.
func (c *Config) ThemeName() string {
	if c.NoColor {
		return "mono"
	}
	return c.Theme
}

// getConfigPath tries to find the .ptreport.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// UserConfigDir may succeed with an unusable root path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "ptreport", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
