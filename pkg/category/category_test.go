package category

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytests/ptreport/pkg/results"
)

func TestDefault_CoversEverySubcategory(t *testing.T) {
	descriptors, err := Default()
	require.NoError(t, err)

	got := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		got = append(got, d.Category)
		assert.NotEmpty(t, d.Name, d.Category)
		assert.Contains(t, []TooltipType{TooltipFingerprinting, TooltipSimple, TooltipCrossSite}, d.TooltipType)
	}
	assert.ElementsMatch(t, results.Subcategories, got)
	assert.Equal(t, "supercookies", got[0])
}

func TestLoad_FileKeepsOrderAndUnknownTooltipType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	yamlContent := "" +
		"- category: https\n" +
		"  name: HTTPS tests\n" +
		"  tooltipType: simple\n" +
		"- category: misc\n" +
		"  name: Misc\n" +
		"  tagline: Other\n" +
		"  tooltipType: sparkle\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	descriptors, err := Load(path)
	require.NoError(t, err)

	require.Len(t, descriptors, 2)
	assert.Equal(t, "https", descriptors[0].Category)
	assert.Equal(t, TooltipType("sparkle"), descriptors[1].TooltipType)
	assert.Equal(t, "Other", descriptors[1].Tagline)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	var missing *results.MissingDataError
	require.True(t, errors.As(err, &missing))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not a list", "category: https\n"},
		{"no category", "- name: nameless\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			var missing *results.MissingDataError
			assert.True(t, errors.As(err, &missing))
		})
	}
}
