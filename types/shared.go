package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the wrapper Mailtrain puts around every API response:
//
//	{"data": ..., "error": null}
type Envelope struct {
	Data  json.RawMessage `json:"data"`
	Error json.RawMessage `json:"error"`
}

// ErrorMessage returns the error reported by the server, or an empty
// string when the envelope carries no error. Empty values (null, false,
// 0, "", {} and []) mean no error.
func (e Envelope) ErrorMessage() string {
	raw := bytes.TrimSpace(e.Error)
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	case string:
		return val
	case []any:
		if len(val) == 0 {
			return ""
		}
	case map[string]any:
		if len(val) == 0 {
			return ""
		}
		if msg, ok := val["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return string(raw)
}

// Record is an object whose shape is defined by the server,
// e.g. a subscriber, a created list or a custom field descriptor.
type Record map[string]any

// String returns the value stored under key formatted as a string.
// Missing keys and null values yield an empty string.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Id returns the "id" attribute. For subscriptions it holds the
// subscriber cid, for lists and fields the server-side id.
func (r Record) Id() string {
	return r.String("id")
}

func isJsonArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}
