// Package tooltip formats the explanatory text attached to each table cell.
// The format is chosen by the section's tooltip type.
package tooltip

import (
	"fmt"
	"strings"

	"github.com/privacytests/ptreport/pkg/category"
	"github.com/privacytests/ptreport/pkg/results"
)

// Formatter renders one test record as plain tooltip text.
type Formatter interface {
	Format(rec *results.Record) string
}

// UnknownTooltipTypeError reports a section whose tooltip type has no
// formatter.
type UnknownTooltipTypeError struct {
	Category    string
	TooltipType category.TooltipType
}

func (e *UnknownTooltipTypeError) Error() string {
	return fmt.Sprintf("category %q: unknown tooltip type %q", e.Category, e.TooltipType)
}

// For returns the formatter for a section.
func For(d category.Descriptor) (Formatter, error) {
	switch d.TooltipType {
	case category.TooltipFingerprinting:
		return Fingerprinting{}, nil
	case category.TooltipSimple:
		return Simple{}, nil
	case category.TooltipCrossSite:
		return CrossSite{}, nil
	default:
		return nil, &UnknownTooltipTypeError{Category: d.Category, TooltipType: d.TooltipType}
	}
}

// Fingerprinting shows the probed expression next to the value it should
// have produced.
type Fingerprinting struct{}

func (Fingerprinting) Format(rec *results.Record) string {
	var sb strings.Builder
	line(&sb, "expression", rec, "expression")
	line(&sb, "desired expression", rec, "desired_expression")
	line(&sb, "actual value", rec, "actual_value")
	line(&sb, "desired value", rec, "desired_value")
	line(&sb, "passed", rec, results.FieldPassed)
	if truthy(rec.Value("worker")) {
		sb.WriteString("[Worker]")
	}
	return strings.TrimSpace(sb.String())
}

// Simple lists every field except the description, in record order.
type Simple struct{}

func (Simple) Format(rec *results.Record) string {
	var sb strings.Builder
	for _, key := range rec.Keys() {
		if key == results.FieldDescription {
			continue
		}
		line(&sb, key, rec, key)
	}
	return strings.TrimSpace(sb.String())
}

// CrossSite shows what was written and what each party read back, one
// paragraph per field.
type CrossSite struct{}

var crossSiteFields = []struct{ label, field string }{
	{"write", "write"},
	{"read", "read"},
	{"result, same first party", "readSameFirstParty"},
	{"result, different first party", "readDifferentFirstParty"},
	{"unsupported", results.FieldUnsupported},
	{"passed", results.FieldPassed},
	{"test failed", results.FieldTestFailed},
}

func (CrossSite) Format(rec *results.Record) string {
	paragraphs := make([]string, 0, len(crossSiteFields))
	for _, f := range crossSiteFields {
		paragraphs = append(paragraphs, f.label+": "+value(rec, f.field))
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}

func line(sb *strings.Builder, label string, rec *results.Record, field string) {
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value(rec, field))
	sb.WriteByte('\n')
}

// value renders a field for display; absent fields render empty.
func value(rec *results.Record, field string) string {
	v, ok := rec.Get(field)
	if !ok {
		return ""
	}
	return results.Display(v)
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case results.Trials:
		return len(val) > 0
	default:
		return true
	}
}
