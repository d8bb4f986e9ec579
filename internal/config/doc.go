// Package config handles configuration loading and merging for ptreport.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --aggregate, --no-preview, --sections, etc.)
//  2. Environment variables (PTREPORT_RESULTS_DIR, PTREPORT_LOCALE, PTREPORT_DEBUG, NO_COLOR)
//  3. YAML config file (.ptreport.yaml in local directory or ~/.config/ptreport/.ptreport.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - results_dir: where raw results live and where pages are written
//   - sections_file: category index; the built-in one is used when empty
//   - logo_dirs: directories searched for browser logos, in order
//   - aggregate: fold repeated trials of one configuration into one column
//   - preview: capture a PNG preview of the page with headless Chrome
//
// # Environment Variables
//
//   - PTREPORT_RESULTS_DIR: overrides results_dir
//   - PTREPORT_LOCALE: overrides locale (BCP 47, e.g. "en" or "de")
//   - PTREPORT_DEBUG: "true" or "1" enables debug logging
//   - NO_COLOR: "true" or "1" disables colors in terminal output
package config
