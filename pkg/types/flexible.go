package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// NumberOrString keeps a JSON number or string as its textual form.
type NumberOrString string

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(b, &asNumber); err == nil {
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

// BoolString accepts true, false, "true" and "false" and serializes as a string.
type BoolString bool

func (b *BoolString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = BoolString(asBool)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(data, &asStr); err == nil {
		if asStr == "" {
			*b = false
			return nil
		}
		parsed, err := strconv.ParseBool(asStr)
		if err != nil {
			return err
		}
		*b = BoolString(parsed)
		return nil
	}

	return errors.New("invalid bool or string")
}

func (b BoolString) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b BoolString) String() string {
	return strconv.FormatBool(bool(b))
}

// StringList accepts a JSON array of strings or a single string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	var asSlice []string
	if err := json.Unmarshal(b, &asSlice); err == nil {
		*l = asSlice
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		if asStr == "" {
			*l = nil
		} else {
			*l = []string{asStr}
		}
		return nil
	}

	return errors.New("invalid string list")
}
