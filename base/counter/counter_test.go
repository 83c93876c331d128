package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("posted", 1)
		}()
	}
	wg.Wait()
	c.Add("suppressed", 2)

	require.Equal(t, 10, c.Count("posted"))
	require.Equal(t, 0, c.Count("missing"))

	snap := c.Snapshot()
	c.Add("posted", 1)
	require.Equal(t, map[string]int{"posted": 10, "suppressed": 2}, snap)
}
