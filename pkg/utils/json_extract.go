package utils

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject pulls a JSON object out of completion text. It tries the
// whole text first, then the span from the first '{' to the last '}'. Anything
// else yields fallback. It never panics.
func ExtractJSONObject(text string, fallback map[string]any) map[string]any {
	if m, ok := decodeObject(text); ok {
		return m
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return fallback
	}
	if m, ok := decodeObject(text[start : end+1]); ok {
		return m
	}
	return fallback
}

func decodeObject(s string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil || m == nil {
		return nil, false
	}
	if rest := strings.TrimSpace(s[dec.InputOffset():]); rest != "" {
		return nil, false
	}
	return m, true
}
