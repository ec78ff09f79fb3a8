package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCATTime(t *testing.T) {
	t.Run("plain integers are valid", func(t *testing.T) {
		parsed := ParseCATTime("35")
		assert.True(t, parsed.Valid())
		assert.Equal(t, 35, parsed.Seconds)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		parsed := ParseCATTime(" 28 ")
		assert.True(t, parsed.Valid())
		assert.Equal(t, 28, parsed.Seconds)
	})

	t.Run("zero is valid", func(t *testing.T) {
		assert.True(t, ParseCATTime("0").Valid())
	})

	t.Run("invalid readings keep their raw text", func(t *testing.T) {
		for _, raw := range []string{"40s", "-", "", "fast", "3.5", "-10"} {
			parsed := ParseCATTime(raw)
			assert.False(t, parsed.Valid(), "raw: %q", raw)
			assert.Equal(t, raw, parsed.Raw)
			assert.Zero(t, parsed.Seconds)
		}
	})
}
