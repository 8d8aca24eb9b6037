package syncmap_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/authcorp/typevault/syncmap"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestComputeIfAbsent(t *testing.T) {
	m := syncmap.New[string, int]()
	calls := 0

	got := m.ComputeIfAbsent("a", func() int { calls++; return 1 })
	assert.Equal(t, 1, got)
	got = m.ComputeIfAbsent("a", func() int { calls++; return 2 })
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, calls)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, 1, m.Len())
}

func TestComputeIfAbsentConcurrent(t *testing.T) {
	type instance struct{ name string }

	m := syncmap.New[string, *instance]()
	var calls atomic.Int32
	results := make([]*instance, 64)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.ComputeIfAbsent("monday", func() *instance {
				calls.Add(1)
				return &instance{name: "monday"}
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
