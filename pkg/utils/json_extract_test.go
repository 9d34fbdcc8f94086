package utils

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectPureJSON(t *testing.T) {
	raw := `{"destination":"Paris","daily_itinerary":[{"day":1,"activities":[]}],"total_cost":0}`

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var want map[string]any
	require.NoError(t, dec.Decode(&want))

	assert.Equal(t, want, ExtractJSONObject(raw, nil))
}

func TestExtractJSONObjectEmbeddedInProse(t *testing.T) {
	got := ExtractJSONObject(`blah {"destination":"Paris","days":[]} blah`, nil)
	assert.Equal(t, map[string]any{"destination": "Paris", "days": []any{}}, got)
}

func TestExtractJSONObjectMarkdownFence(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"destination\": \"Lisbon\"}\n```"
	got := ExtractJSONObject(text, nil)
	assert.Equal(t, "Lisbon", got["destination"])
}

func TestExtractJSONObjectNestedBraces(t *testing.T) {
	text := `note {"a":{"b":{"c":1}}} and more`
	got := ExtractJSONObject(text, nil)
	require.Contains(t, got, "a")
	assert.Equal(t, map[string]any{"b": map[string]any{"c": json.Number("1")}}, got["a"])
}

func TestExtractJSONObjectFallback(t *testing.T) {
	fallback := map[string]any{"destination": "Oslo", "daily_itinerary": []any{}}
	inputs := []string{
		"",
		"no json here",
		"}{",
		"{ not json }",
		"{\"a\": 1",
		"[1, 2, 3]",
		"{\"a\":1} {\"b\":2}",
		"null",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			assert.Equal(t, fallback, ExtractJSONObject(in, fallback), "input %q", in)
		})
	}
}

func TestExtractJSONObjectNilFallback(t *testing.T) {
	assert.Nil(t, ExtractJSONObject("garbage", nil))
}
