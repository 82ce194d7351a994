package models

import (
	"encoding/json"
	"strconv"
)

// StringValue renders a decoded JSON value as text. Numbers keep their
// literal form when decoded with UseNumber, null is "", and arrays or
// objects are written as compact JSON.
func StringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// StringList renders a decoded JSON value as a list of strings. Each array
// element goes through StringValue; null gives an empty list and any other
// value a single-element list.
func StringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, StringValue(item))
		}
		return out
	default:
		return []string{StringValue(t)}
	}
}
