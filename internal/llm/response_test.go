package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLLMResponse(t *testing.T) {
	t.Run("strips json fences", func(t *testing.T) {
		input := "```json\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, CleanLLMResponse(input))
	})

	t.Run("strips bare fences", func(t *testing.T) {
		input := "```\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, CleanLLMResponse(input))
	})

	t.Run("removes trailing commas", func(t *testing.T) {
		input := `{"a": 1, "b": [1, 2,],}`
		cleaned := CleanLLMResponse(input)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(cleaned), &parsed))
		assert.Equal(t, float64(1), parsed["a"])
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", CleanLLMResponse("  hello  "))
	})
}

func TestCleanJSONResponse(t *testing.T) {
	t.Run("extracts object from surrounding prose", func(t *testing.T) {
		input := "Here is your itinerary:\n```json\n{\"trip_summary\": {\"duration_days\": 5}}\n```\nEnjoy your trip!"
		cleaned := CleanJSONResponse(input)

		var parsed struct {
			Summary struct {
				DurationDays int `json:"duration_days"`
			} `json:"trip_summary"`
		}
		require.NoError(t, json.Unmarshal([]byte(cleaned), &parsed))
		assert.Equal(t, 5, parsed.Summary.DurationDays)
	})

	t.Run("balances nested braces", func(t *testing.T) {
		input := `{"outer": {"inner": {"deep": true}}} trailing garbage`
		assert.Equal(t, `{"outer": {"inner": {"deep": true}}}`, CleanJSONResponse(input))
	})

	t.Run("removes backticks inside object", func(t *testing.T) {
		input := "{\"note\": \"use the `train`\"}"
		cleaned := CleanJSONResponse(input)
		assert.NotContains(t, cleaned, "`")
	})

	t.Run("unbalanced braces fall back to last closing brace", func(t *testing.T) {
		input := `{"a": {"b": 1}`
		assert.Equal(t, `{"a": {"b": 1}`, CleanJSONResponse(input))
	})

	t.Run("no braces returns input", func(t *testing.T) {
		assert.Equal(t, "no json here", CleanJSONResponse("no json here"))
	})
}
