package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(t *testing.T, capacity int) (*Cache[string, int], *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	c, err := New[string, int](capacity, WithClock(clock.now))
	require.NoError(t, err)
	return c, clock
}

func TestNew_RejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New[string, int](capacity)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestSetThenGet_ReturnsValue(t *testing.T) {
	c, _ := newTestCache(t, 3)
	c.Set("a", 1, time.Minute)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSet_ReplacesValueAndTTL(t *testing.T) {
	c, clock := newTestCache(t, 3)
	c.Set("a", 1, time.Second)
	clock.advance(500 * time.Millisecond)
	c.Set("a", 2, time.Minute)
	clock.advance(time.Second)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestGet_ExpiredEntryIsMissAndRemoved(t *testing.T) {
	c, clock := newTestCache(t, 3)
	c.Set("a", 1, 5*time.Minute)
	c.Set("b", 2, time.Hour)

	clock.advance(5*time.Minute + time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"b"}, c.Keys())
	assert.Equal(t, int64(1), c.Metrics().Expirations)
}

func TestGet_ZeroTTLIsNeverFresh(t *testing.T) {
	c, _ := newTestCache(t, 3)
	c.Set("a", 1, 0)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestSet_EvictsLeastRecentlyTouched(t *testing.T) {
	c, _ := newTestCache(t, 2)
	c.Set("a", 1, time.Hour)
	c.Set("b", 2, time.Hour)

	// touching a makes b the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)
	c.Set("c", 3, time.Hour)

	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"a", "c"}, c.Keys())
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestGet_HitDoesNotRefreshTimestamp(t *testing.T) {
	c, clock := newTestCache(t, 2)
	c.Set("a", 1, time.Minute)

	clock.advance(40 * time.Second)
	_, ok := c.Get("a")
	require.True(t, ok)

	clock.advance(30 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "recency must not extend the ttl")
}

func TestEviction_IndependentOfTTL(t *testing.T) {
	c, _ := newTestCache(t, 1)
	c.Set("long", 1, 24*time.Hour)
	c.Set("short", 2, time.Second)

	_, ok := c.Get("long")
	assert.False(t, ok)
	v, ok := c.Get("short")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestNeverExceedsCapacity(t *testing.T) {
	c, clock := newTestCache(t, 4)
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("k%d", i%7)
		c.Set(key, i, time.Duration(i%3)*time.Second)
		c.Get(fmt.Sprintf("k%d", (i+3)%7))
		clock.advance(700 * time.Millisecond)
		assert.LessOrEqual(t, c.Len(), 4)
	}
}

func TestPeek_DoesNotTouchRecency(t *testing.T) {
	c, _ := newTestCache(t, 2)
	c.Set("a", 1, time.Hour)
	c.Set("b", 2, time.Hour)

	assert.True(t, c.Peek("a"))
	c.Set("c", 3, time.Hour)

	assert.False(t, c.Peek("a"))
	assert.True(t, c.Peek("b"))
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(t, 2)
	c.Set("a", 1, time.Hour)
	c.Get("a")
	c.Clear()

	assert.Zero(t, c.Len())
	assert.Equal(t, Metrics{}, c.Metrics())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
