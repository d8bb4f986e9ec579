package results

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Field names shared by every kind of test result.
const (
	FieldPassed      = "passed"
	FieldTestFailed  = "testFailed"
	FieldUnsupported = "unsupported"
	FieldDescription = "description"
)

// Trials holds one value per repeated trial of a configuration, in trial
// order. A field only ever holds Trials after aggregation; a plain JSON array
// in the raw data decodes to []any instead.
type Trials []any

// Record is the result of a single test: an open set of named fields whose
// order is kept as it appeared in the raw data.
type Record struct {
	keys   []string
	fields map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: make(map[string]any)}
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.fields[key]
	return v, ok
}

// Value returns the value of a field, or nil when absent.
func (r *Record) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

// Set stores a field, appending it to the field order if it is new.
func (r *Record) Set(key string, v any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
}

// Keys returns the field names in their original order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Passed returns the "passed" field.
func (r *Record) Passed() any { return r.Value(FieldPassed) }

// TestFailed returns the "testFailed" field.
func (r *Record) TestFailed() any { return r.Value(FieldTestFailed) }

// Unsupported returns the "unsupported" field.
func (r *Record) Unsupported() any { return r.Value(FieldUnsupported) }

// Description returns the human description of the test, if any.
func (r *Record) Description() string {
	s, _ := r.Value(FieldDescription).(string)
	return s
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := &Record{
		keys:   append([]string(nil), r.keys...),
		fields: make(map[string]any, len(r.fields)),
	}
	for k, v := range r.fields {
		c.fields[k] = cloneValue(v)
	}
	return c
}

// UnmarshalJSON decodes a JSON object, keeping its field order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	tok, err := dec.ReadToken()
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if tok.Kind() == 'n' {
		*r = Record{}
		return nil
	}
	if tok.Kind() != '{' {
		return fmt.Errorf("decode record: expected object, got %v", tok.Kind())
	}

	rec := Record{fields: make(map[string]any)}
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return fmt.Errorf("decode record: %w", err)
		}
		// The token is only valid until the next read.
		key := name.String()
		raw, err := dec.ReadValue()
		if err != nil {
			return fmt.Errorf("decode record field %q: %w", key, err)
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode record field %q: %w", key, err)
		}
		rec.Set(key, v)
	}
	if _, err := dec.ReadToken(); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	*r = rec
	return nil
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}
	for _, key := range r.keys {
		if err := enc.WriteToken(jsontext.String(key)); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(r.fields[key], json.Deterministic(true))
		if err != nil {
			return nil, fmt.Errorf("encode record field %q: %w", key, err)
		}
		if err := enc.WriteValue(raw); err != nil {
			return nil, err
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Values returns the per-trial values of a field: the elements of Trials, or
// the single value itself.
func Values(v any) []any {
	if t, ok := v.(Trials); ok {
		return t
	}
	return []any{v}
}

// Display renders a field value for people. Trials and arrays are joined
// with ", ", and a null element of either joins as "", so a trial that did
// not record the field leaves an empty slot.
func Display(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case Trials:
		return joinDisplay(val)
	case []any:
		return joinDisplay(val)
	case map[string]any:
		raw, err := json.Marshal(val, json.Deterministic(true))
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(raw)
	default:
		return fmt.Sprint(val)
	}
}

func joinDisplay(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if v != nil {
			parts[i] = Display(v)
		}
	}
	return strings.Join(parts, ", ")
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Trials:
		c := make(Trials, len(val))
		for i, e := range val {
			c[i] = cloneValue(e)
		}
		return c
	case []any:
		c := make([]any, len(val))
		for i, e := range val {
			c[i] = cloneValue(e)
		}
		return c
	case map[string]any:
		c := make(map[string]any, len(val))
		for k, e := range val {
			c[k] = cloneValue(e)
		}
		return c
	default:
		return v
	}
}
