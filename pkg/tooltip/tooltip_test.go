package tooltip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/results"
)

func record(kv ...any) *results.Record {
	rec := results.NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Set(kv[i].(string), kv[i+1])
	}
	return rec
}

func TestFor(t *testing.T) {
	tests := []struct {
		tooltipType category.TooltipType
		want        Formatter
	}{
		{category.TooltipFingerprinting, Fingerprinting{}},
		{category.TooltipSimple, Simple{}},
		{category.TooltipCrossSite, CrossSite{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tooltipType), func(t *testing.T) {
			f, err := For(category.Descriptor{Category: "x", TooltipType: tt.tooltipType})
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestFor_Unknown(t *testing.T) {
	_, err := For(category.Descriptor{Category: "misc", TooltipType: "sparkle"})

	var unknown *UnknownTooltipTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "misc", unknown.Category)
	assert.Equal(t, category.TooltipType("sparkle"), unknown.TooltipType)
	assert.Contains(t, err.Error(), `"sparkle"`)
}

func TestFingerprinting(t *testing.T) {
	rec := record(
		"expression", "screen.width",
		"desired_expression", "window.innerWidth",
		"actual_value", 1920.0,
		"desired_value", 1000.0,
		"passed", results.Trials{false, true},
	)
	want := "expression: screen.width\n" +
		"desired expression: window.innerWidth\n" +
		"actual value: 1920\n" +
		"desired value: 1000\n" +
		"passed: false, true"
	assert.Equal(t, want, Fingerprinting{}.Format(rec))

	rec.Set("worker", true)
	assert.Equal(t, want+"\n[Worker]", Fingerprinting{}.Format(rec))
}

func TestSimple_SkipsDescriptionKeepsOrder(t *testing.T) {
	rec := record("upgraded", true, "description", "should not show", "passed", true, "result", nil)

	assert.Equal(t, "upgraded: true\npassed: true\nresult: null", Simple{}.Format(rec))
}

func TestSimple_Empty(t *testing.T) {
	assert.Equal(t, "", Simple{}.Format(record("description", "only")))
}

func TestCrossSite(t *testing.T) {
	rec := record(
		"write", "w",
		"read", "r",
		"readSameFirstParty", results.Trials{"a", "b"},
		"readDifferentFirstParty", results.Trials{nil, nil},
		"passed", results.Trials{true, true},
		"testFailed", false,
	)
	want := "write: w\n\n" +
		"read: r\n\n" +
		"result, same first party: a, b\n\n" +
		"result, different first party: , \n\n" +
		"unsupported: \n\n" +
		"passed: true, true\n\n" +
		"test failed: false"
	assert.Equal(t, want, CrossSite{}.Format(rec))
}
