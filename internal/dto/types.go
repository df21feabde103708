package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts a JSON string or number and keeps its text.
// A JSON null decodes to the empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*s = FlexString(text)
	return nil
}

func (s FlexString) String() string { return string(s) }

// PriceInput keeps the exact text of a price sent as a JSON number or string,
// so the number of fractional digits can be checked before any rounding.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*p = PriceInput(text)
	return nil
}

func (p PriceInput) String() string { return string(p) }

func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return "", nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", fmt.Errorf("expected a string or a number, got %s", data)
		}
		return n.String(), nil
	}
}
