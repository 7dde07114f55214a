package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// NumberOrString keeps the textual form of a JSON number or string,
// so "004" and 4 can be told apart by the validator.
type NumberOrString string

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	var asNumber json.Number
	if err := json.Unmarshal(b, &asNumber); err == nil && len(b) > 0 && b[0] != '"' {
		*n = NumberOrString(asNumber.String())
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		*n = NumberOrString(asStr)
		return nil
	}

	return errors.New("invalid number or string")
}

func (n NumberOrString) String() string {
	return string(n)
}
