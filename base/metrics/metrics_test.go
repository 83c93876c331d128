package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"reason:below_threshold", "collection:PINNACLE"},
		parseTag([]string{"reason", "below_threshold", "collection", "PINNACLE"}))
}

func TestBumpWithoutAgent(t *testing.T) {
	m := New("salesbot")
	require.NotPanics(t, func() {
		m.BumpSum("event.received", 1)
		m.BumpSum("event.suppressed", 1, "reason", "dedup")
		m.BumpSum("odd", 1, "reason")
		m.BumpTime("flow.script").End()
	})
}

func TestOrDefault(t *testing.T) {
	req := require.New(t)
	req.Equal("prod", orDefault("prod", func() string { return "local" }))
	req.Equal("local", orDefault("", func() string { return "local" }))
}
