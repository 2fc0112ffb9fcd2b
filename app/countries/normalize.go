package countries

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/joefazee/countrysearch/models"
)

// Shape names the branch Normalize took to find the country array.
type Shape string

const (
	ShapeValueField   Shape = "value_field"
	ShapeBareArray    Shape = "bare_array"
	ShapeLongestField Shape = "longest_field"
	ShapeUnrecognized Shape = "unrecognized"
)

// valueField is the envelope field the upstream normally wraps the list in.
const valueField = "value"

// Payload is a normalized upstream response.
type Payload struct {
	Shape     Shape
	Countries []models.Country
}

// Normalize extracts the country list from an upstream response body.
//
// The list is taken from, in order: the "value" field of an object when it
// holds an array; the body itself when it is an array; the longest array
// among the fields of an object (later fields win ties, a repeated key counts
// once with its last value). Anything else yields an empty list. Only a body
// that is not valid JSON is an error.
func Normalize(body []byte) (*Payload, error) {
	if !json.Valid(body) {
		return nil, models.ErrMalformedPayload
	}

	body = bytes.TrimSpace(body)
	var (
		shape Shape
		items []json.RawMessage
		err   error
	)
	switch body[0] {
	case '[':
		shape = ShapeBareArray
		err = json.Unmarshal(body, &items)
	case '{':
		shape, items, err = scanObject(body)
	default:
		shape = ShapeUnrecognized
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrMalformedPayload, err)
	}

	return &Payload{Shape: shape, Countries: toCountries(items)}, nil
}

// scanObject reads the object's fields. A repeated key keeps its last value
// and the position of its first occurrence.
func scanObject(body []byte) (Shape, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if _, err := dec.Token(); err != nil {
		return "", nil, err
	}

	var keys []string
	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", nil, err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return "", nil, err
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = raw
	}

	if arr, ok := asArray(fields[valueField]); ok {
		return ShapeValueField, arr, nil
	}

	var (
		longest    []json.RawMessage
		hasLongest bool
	)
	for _, key := range keys {
		arr, ok := asArray(fields[key])
		if !ok {
			continue
		}
		if !hasLongest || len(arr) >= len(longest) {
			longest, hasLongest = arr, true
		}
	}
	if hasLongest {
		return ShapeLongestField, longest, nil
	}
	return ShapeUnrecognized, nil, nil
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// toCountries keeps every element, in order. Elements that are not objects,
// or whose fields are not strings, become records without name or flag.
func toCountries(items []json.RawMessage) []models.Country {
	out := make([]models.Country, len(items))
	for i, raw := range items {
		out[i].Position = i

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		out[i].Name = stringField(fields, "common")
		out[i].Flag = stringField(fields, "png")
	}
	return out
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
