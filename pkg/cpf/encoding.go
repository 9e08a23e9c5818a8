package cpf

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// MarshalText implements encoding.TextMarshaler.
func (c CPF) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *CPF) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes the CPF as its 11-digit string. The zero value
// encodes as null.
func (c CPF) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts a JSON string (plain or punctuated) or a JSON
// number. null leaves c unchanged.
func (c *CPF) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	value, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return newParseError(string(data), ErrInvalidLength)
		}
		return newParseError(string(data), ErrInvalidFormat)
	}

	parsed, err := New(value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
