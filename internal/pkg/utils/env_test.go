package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Defaults When Unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("ECARE_TEST_UNSET", "fallback"))
	})

	t.Run("Defaults When Empty", func(t *testing.T) {
		t.Setenv("ECARE_TEST_EMPTY", "")
		assert.Equal(t, "fallback", GetEnvString("ECARE_TEST_EMPTY", "fallback"))
	})

	t.Run("Reads Value", func(t *testing.T) {
		t.Setenv("ECARE_TEST_VALUE", "dev@example.com")
		assert.Equal(t, "dev@example.com", GetEnvString("ECARE_TEST_VALUE", "fallback"))
	})
}
