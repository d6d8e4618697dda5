package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSlotDiscardsStaleResult(t *testing.T) {
	var slot ResultSlot[string]

	slow := slot.Begin()
	fast := slot.Begin()

	// Fast query lands first.
	fresh := "fresh"
	require.True(t, slot.Apply(fast, &fresh))

	// The superseded query's late arrival must not clobber it.
	stale := "stale"
	assert.False(t, slot.Apply(slow, &stale))

	require.NotNil(t, slot.Current())
	assert.Equal(t, "fresh", *slot.Current())
}

func TestResultSlotLatestWins(t *testing.T) {
	var slot ResultSlot[int]

	first := slot.Begin()
	one := 1
	require.True(t, slot.Apply(first, &one))

	second := slot.Begin()
	two := 2
	require.True(t, slot.Apply(second, &two))

	assert.Equal(t, 2, *slot.Current())
}

func TestResultSlotConcurrentQueries(t *testing.T) {
	var slot ResultSlot[int]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		token := slot.Begin()
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := int(token)
			slot.Apply(token, &v)
		}()
	}
	wg.Wait()

	// Only the last-issued token can win; its Apply always succeeds.
	cur := slot.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 50, *cur)
}
