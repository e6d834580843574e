package models

import (
	"bytes"
	"encoding/json"
)

// NullableString is a patch field for a nullable column. Set reports whether the
// key was present in the request, so an explicit null can clear the column.
type NullableString struct {
	Set   bool
	Value *string
}

// SetString returns a present value
func SetString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

// Null returns a present null
func Null() NullableString {
	return NullableString{Set: true}
}

// UnmarshalJSON marks the field present and decodes a string or null
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON encodes the value or null; pair with omitzero to drop absent fields
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsZero reports an absent field
func (n NullableString) IsZero() bool {
	return !n.Set
}

// String returns the value, or "" for null and absent fields
func (n NullableString) String() string {
	if n.Value == nil {
		return ""
	}
	return *n.Value
}

// apply stores a present field into dst. Empty strings are stored as null,
// the same way creation normalises them.
func (n NullableString) apply(dst **string) {
	if !n.Set {
		return
	}
	if n.Value == nil || *n.Value == "" {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}
