package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/farcloser/primordium/fault"
)

// SeverityError is the ESLint severity of an error. Every other severity is ignored.
const SeverityError = 2

// Keys of a per-file result.
const (
	keyFilePath   = "filePath"
	keyErrorCount = "errorCount"
	keyMessages   = "messages"
)

// Keys of a lint message.
const (
	keyLine     = "line"
	keyRuleID   = "ruleId"
	keyMessage  = "message"
	keySeverity = "severity"
)

//nolint:gochecknoglobals // effectively const
var jsonNull = []byte("null")

// object is a decoded JSON object. Keys are matched exactly, unlike struct decoding.
type object map[string]json.RawMessage

func decodeObject(raw json.RawMessage) (object, error) {
	if bytes.Equal(raw, jsonNull) {
		return nil, errNotAnObject
	}

	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	return obj, nil
}

// field returns the raw value of key, and whether it is present.
func (o object) field(key string) (json.RawMessage, bool) {
	raw, ok := o[key]

	return raw, ok
}

// required returns the raw value of key, failing when it is absent or null.
func (o object) required(key string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return nil, fmt.Errorf("%w: %q", errMissingField, key)
	}

	return raw, nil
}

// number returns the value of a JSON number. ok is false for any other JSON value, numeric strings included.
func number(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false
	}

	val, err := num.Float64()

	return val, err == nil
}

// text renders a value for display: strings unquoted, anything else as its JSON literal.
func text(raw json.RawMessage) string {
	var str string
	if raw[0] != '"' || json.Unmarshal(raw, &str) != nil {
		return string(raw)
	}

	return str
}
