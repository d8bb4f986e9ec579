// Package category loads the category index: the ordered list of table
// sections, their copy, and which tooltip format applies to their tests.
package category

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/privacytests/ptreport/pkg/results"
)

// TooltipType selects the tooltip format used for every test in a section.
type TooltipType string

const (
	TooltipFingerprinting TooltipType = "fingerprinting"
	TooltipSimple         TooltipType = "simple"
	TooltipCrossSite      TooltipType = "crossSite"
)

// TrackerCookies is only shown in desktop reports.
const TrackerCookies = "tracker_cookies"

// Descriptor describes one section of the comparison table.
type Descriptor struct {
	Category    string      `yaml:"category"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Tagline     string      `yaml:"tagline"`
	TooltipType TooltipType `yaml:"tooltipType"`
}

//go:embed sections.yaml
var defaultSections []byte

// Default returns the index compiled into the binary.
func Default() ([]Descriptor, error) {
	return Parse(defaultSections)
}

// Load reads the index from a YAML file, or returns Default when path is empty.
func Load(path string) ([]Descriptor, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config or flags
	if err != nil {
		return nil, &results.MissingDataError{What: "category index " + path, Err: err}
	}
	descriptors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptors, nil
}

// Parse decodes a YAML list of descriptors. Tooltip types are not checked
// here; an unknown one fails when the table is built.
func Parse(data []byte) ([]Descriptor, error) {
	var descriptors []Descriptor
	if err := yaml.Unmarshal(data, &descriptors); err != nil {
		return nil, &results.MissingDataError{What: "category index", Err: err}
	}
	if len(descriptors) == 0 {
		return nil, &results.MissingDataError{What: "category index", Err: errors.New("no sections")}
	}
	for i, d := range descriptors {
		if d.Category == "" {
			return nil, &results.MissingDataError{What: "category index", Err: fmt.Errorf("section %d has no category", i)}
		}
	}
	return descriptors, nil
}
