// Package models provides request and response models for the AquaWatch API.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Float is a JSON number that also accepts numeric strings, matching what
// browser form clients submit ({"lat": "44.5"}). Absent, null, and
// unparseable values all leave Set false.
type Float struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler for Float.
func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		// Unparseable input is treated as not supplied.
		return nil
	}
	f.Value = v
	f.Set = true
	return nil
}

// MarshalJSON implements json.Marshaler for Float.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a nullable pointer: nil when not supplied.
func (f Float) Ptr() *float64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}
