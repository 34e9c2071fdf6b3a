// Package jsonutil provides helpers for working with untyped JSON payloads:
// the agent bridge and the agent event stream both deliver
// map[string]interface{} shaped data that needs tolerant field extraction.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns empty string when the key is missing or not a string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetStringOr extracts a string value with a default when the key doesn't
// exist or isn't a string.
func GetStringOr(m map[string]interface{}, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return defaultValue
}

// GetNumber extracts a numeric value. JSON numbers decode as float64;
// strings holding numbers are accepted too since language models routinely
// quote them. The second return reports whether a usable number was found.
func GetNumber(m map[string]interface{}, key string) (float64, bool) {
	switch val := m[key].(type) {
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(val, "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// GetBool extracts a bool value; missing or mistyped keys return false.
func GetBool(m map[string]interface{}, key string) bool {
	val, _ := m[key].(bool)
	return val
}

// UnmarshalLine unmarshals a single JSON line into v. Returns an error for
// empty lines so stream readers can skip blanks cheaply.
func UnmarshalLine(line string, v interface{}) error {
	if line == "" {
		return fmt.Errorf("empty JSON line")
	}
	return json.Unmarshal([]byte(line), v)
}
