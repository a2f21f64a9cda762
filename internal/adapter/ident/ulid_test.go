package ident

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorUniqueUnderConcurrency(t *testing.T) {
	g := NewGenerator()

	const workers, perWorker = 8, 250
	var (
		mu  sync.Mutex
		ids = make(map[string]struct{}, workers*perWorker)
		wg  sync.WaitGroup
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id, err := g.New()
				assert.NoError(t, err)
				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, ids, workers*perWorker)
}

func TestGeneratorMonotonicWithinSameMillisecond(t *testing.T) {
	g := NewGenerator()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	got := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		id, err := g.New()
		require.NoError(t, err)
		got = append(got, id)
	}

	require.True(t, sort.StringsAreSorted(got), "ids must be strictly increasing")
	parsed, err := ulid.Parse(got[0])
	require.NoError(t, err)
	require.Equal(t, ulid.Timestamp(fixed), parsed.Time())
}
