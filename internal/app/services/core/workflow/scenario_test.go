package workflow

import (
	"ecare-automation/internal/pkg/dto/responses"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestHasData(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "Missing", raw: "", want: false},
		{name: "Null", raw: "null", want: false},
		{name: "Empty Array", raw: "[]", want: false},
		{name: "Empty Object", raw: " {} ", want: false},
		{name: "Settings Array", raw: `[{"providerId":"prov-9","bookingWindow":"3"}]`, want: true},
		{name: "Settings Object", raw: `{"providerId":"prov-9"}`, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hasData(&responses.AvailabilityResult{Data: json.RawMessage(tc.raw)}))
		})
	}

	t.Run("Nil Response", func(t *testing.T) {
		assert.False(t, hasData(nil))
	})
}
