package transport

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseBody(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Empty Body", func(t *testing.T) {
		envelope, raw := ParseBody(logger, 204, nil, "req")
		assert.False(t, envelope.Success)
		assert.Equal(t, "Empty response body", envelope.Message)
		assert.Equal(t, 204, envelope.Status)
		assert.JSONEq(t, `{"success":false,"message":"Empty response body","data":null,"status":204}`, string(raw))
	})

	t.Run("Whitespace Body", func(t *testing.T) {
		envelope, _ := ParseBody(logger, 200, []byte("  \n\t "), "req")
		assert.Equal(t, "Empty response body", envelope.Message)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		envelope, _ := ParseBody(logger, 502, []byte("Bad Gateway"), "req")
		assert.False(t, envelope.Success)
		assert.Equal(t, "Invalid JSON response", envelope.Message)
		assert.Equal(t, 502, envelope.Status)
		assert.Equal(t, "null", string(envelope.Data))
	})

	t.Run("Valid Envelope", func(t *testing.T) {
		body := []byte(`{"code":"ENTITY","message":null,"data":{"accessToken":"abc"}}`)
		envelope, raw := ParseBody(logger, 200, body, "req")

		assert.Equal(t, "ENTITY", envelope.Code)
		assert.Equal(t, body, raw)

		var data map[string]string
		require.NoError(t, json.Unmarshal(envelope.Data, &data))
		assert.Equal(t, "abc", data["accessToken"])
	})

	t.Run("Bare Array", func(t *testing.T) {
		envelope, _ := ParseBody(logger, 200, []byte(`[{"id":"1"}]`), "req")
		assert.True(t, envelope.Success)
		assert.JSONEq(t, `[{"id":"1"}]`, string(envelope.Data))
	})
}
