package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a request field that accepts a JSON string, number or boolean and keeps its text form.
// Clients send identity and phone numbers either way.
type Text string

// UnmarshalJSON stores numbers digit for digit and null as empty.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case json.Number:
		*t = Text(v.String())
	case bool:
		*t = Text(strconv.FormatBool(v))
	default:
		return fmt.Errorf("expected text, got %s", data)
	}
	return nil
}

// String returns the value with surrounding whitespace removed.
func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

func trim(fields ...*Text) {
	for _, f := range fields {
		*f = Text(f.String())
	}
}

// optional turns a missing or blank value into nil.
func optional(t *Text) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	if s == "" {
		return nil
	}
	return &s
}
