package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextWeekday(t *testing.T) {
	t.Run("From Wednesday", func(t *testing.T) {
		from := time.Date(2025, 7, 30, 9, 0, 0, 0, time.UTC)
		next := NextWeekday(from, time.Monday, 17, 0)
		assert.Equal(t, "2025-08-04T17:00:00Z", FormatUTC(next))
	})

	t.Run("From Monday Skips A Week", func(t *testing.T) {
		from := time.Date(2025, 8, 4, 8, 0, 0, 0, time.UTC)
		next := NextWeekday(from, time.Monday, 17, 0)
		assert.Equal(t, "2025-08-11T17:00:00Z", FormatUTC(next))
	})
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	parts := strings.Split(id, "_")

	assert.Len(t, parts, 3)
	assert.Equal(t, "req", parts[0])
	assert.Len(t, parts[2], 9)
	assert.NotEqual(t, id, GenerateRequestID())
}
