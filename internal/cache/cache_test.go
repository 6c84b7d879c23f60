package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGetOrCompute(t *testing.T) {
	c := New[[]string](10)

	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"Imperialismus"}, nil
	}

	v, err := c.GetOrCompute("k", fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"Imperialismus"}, v)

	v, err = c.GetOrCompute("k", fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"Imperialismus"}, v)

	assert.Equal(t, 1, calls)
	assert.Equal(t, Stats{Hits: 1, Misses: 1, Computations: 1}, c.Stats())
	assert.Equal(t, 1, c.Len())
}

func TestInsertionOrderEviction(t *testing.T) {
	c := New[string](2)

	computed := map[string]int{}
	compute := func(key string) func() (string, error) {
		return func() (string, error) {
			computed[key]++
			return "value-" + key, nil
		}
	}

	for _, k := range []string{"K1", "K2", "K3"} {
		_, err := c.GetOrCompute(k, compute(k))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"K2", "K3"}, cachedKeys(c, "K1", "K2", "K3"))

	// K2 and K3 are served from cache
	for _, k := range []string{"K2", "K3"} {
		v, err := c.GetOrCompute(k, compute(k))
		require.NoError(t, err)
		assert.Equal(t, "value-"+k, v)
	}

	// K1 is recomputed from scratch
	v, err := c.GetOrCompute("K1", compute("K1"))
	require.NoError(t, err)
	assert.Equal(t, "value-K1", v)

	assert.Equal(t, map[string]int{"K1": 2, "K2": 1, "K3": 1}, computed)
	assert.Equal(t, uint64(2), c.Stats().Evictions)
	assert.Equal(t, []string{"K1", "K3"}, cachedKeys(c, "K1", "K2", "K3"))
}

func TestHitsDoNotRefreshOrder(t *testing.T) {
	c := New[int](2)

	one := func() (int, error) { return 1, nil }

	_, _ = c.GetOrCompute("a", one)
	_, _ = c.GetOrCompute("b", one)
	_, _ = c.GetOrCompute("a", one)
	_, _ = c.GetOrCompute("c", one)

	assert.Equal(t, []string{"b", "c"}, cachedKeys(c, "a", "b", "c"))
}

// cachedKeys returns the candidates currently held by c.
func cachedKeys[V any](c *Cache[V], candidates ...string) []string {
	var keys []string

	for _, k := range candidates {
		if _, ok := c.Get(k); ok {
			keys = append(keys, k)
		}
	}

	return keys
}

func TestErrorsAreNotCached(t *testing.T) {
	c := New[string](4)
	errBoom := errors.New("boom")

	_, err := c.GetOrCompute("k", func() (string, error) { return "", errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, c.Len())

	v, err := c.GetOrCompute("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, uint64(2), c.Stats().Computations)
}

func TestConcurrentSameKeyComputesOnce(t *testing.T) {
	const callers = 64

	c := New[[]string](DefaultCapacity)

	var (
		calls   atomic.Int32
		release = make(chan struct{})
		wg      sync.WaitGroup
		results = make([][]string, callers)
	)

	fn := func() ([]string, error) {
		calls.Add(1)
		<-release

		return []string{"Theologie", "Geschichte"}, nil
	}

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			v, err := c.GetOrCompute("shared", fn)
			assert.NoError(t, err)

			results[i] = v
		}()
	}

	// give the callers time to pile up on the flight
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())

	for _, r := range results {
		assert.Equal(t, []string{"Theologie", "Geschichte"}, r)
	}
}

func TestUnrelatedKeysDoNotBlock(t *testing.T) {
	c := New[string](DefaultCapacity)

	blocked := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = c.GetOrCompute("slow", func() (string, error) {
			close(started)
			<-blocked

			return "slow", nil
		})
	}()

	<-started

	v, err := c.GetOrCompute("fast", func() (string, error) { return "fast", nil })
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	close(blocked)
	<-done
}

func TestEvictedValueStaysValid(t *testing.T) {
	c := New[[]string](1)

	first, err := c.GetOrCompute("a", func() ([]string, error) { return []string{"x"}, nil })
	require.NoError(t, err)

	_, err = c.GetOrCompute("b", func() ([]string, error) { return []string{"y"}, nil })
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, first)
	assert.Equal(t, 1, c.Len())
}

func TestDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[int](0).Capacity())
	assert.Equal(t, 5, New[int](5).Capacity())
}

func TestKeyString(t *testing.T) {
	a := Key{RecordID: "1", FieldSpec: "689a", Separators: " / ", Filter: "None"}
	b := Key{RecordID: "1", FieldSpec: "689a", Separators: " / ", Filter: "Time"}
	c := Key{RecordID: "16", FieldSpec: "89a", Separators: " / ", Filter: "None"}

	assert.NotEqual(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
	assert.Equal(t, a.String(), Key{RecordID: "1", FieldSpec: "689a", Separators: " / ", Filter: "None"}.String())
}
