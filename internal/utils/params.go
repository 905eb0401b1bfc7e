package utils

import (
	"net/url"
	"strconv"
)

// ParseFloatParam parses an optional float query parameter. A missing or
// empty parameter yields zero without an error; a malformed value is
// recorded in fieldErrors. The (possibly created) fieldErrors map is
// returned so calls can be chained.
func ParseFloatParam(values url.Values, name string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw := values.Get(name)
	if raw == "" {
		return 0, fieldErrors
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], "must be a valid number")
		return 0, fieldErrors
	}

	return value, fieldErrors
}

// ParseIntParam parses an optional integer query parameter with the same
// conventions as ParseFloatParam.
func ParseIntParam(values url.Values, name string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw := values.Get(name)
	if raw == "" {
		return 0, fieldErrors
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], "must be a valid integer")
		return 0, fieldErrors
	}

	return value, fieldErrors
}
