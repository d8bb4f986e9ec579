package render

import (
	"encoding/json"

	"github.com/privacytests/ptreport/pkg/report"
	"github.com/privacytests/ptreport/pkg/table"
)

// JSON renders the report as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version     string       `json:"version"`
	Platform    string       `json:"platform"`
	Git         string       `json:"git"`
	TimeStarted string       `json:"timeStarted"`
	Nightly     bool         `json:"nightly"`
	Incognito   bool         `json:"incognito"`
	Table       *table.Table `json:"table"`
}

// Render formats the report as indented JSON.
func (j *JSON) Render(rep *report.Report) (string, error) {
	out := jsonOutput{
		Version:     "1.0",
		Platform:    rep.Platform,
		Git:         rep.Git,
		TimeStarted: rep.TimeStarted,
		Nightly:     rep.Nightly,
		Incognito:   rep.Incognito,
		Table:       rep.Table,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
