package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func newTestCache(ttl time.Duration) (*Cache[string], *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	c := New[string](ttl)
	c.SetClock(clk.Now)
	return c, clk
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", "1")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	c.Set("a", "2")
	v, _ = c.Get("a")
	assert.Equal(t, "2", v)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c, clk := newTestCache(time.Minute)
	c.Set("a", "1")

	clk.Advance(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	clk.Advance(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry is dropped on read")
}

func TestCache_NoTTL(t *testing.T) {
	c, clk := newTestCache(0)
	c.Set("a", "1")
	clk.Advance(24 * time.Hour)
	_, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 0, c.Purge())
}

func TestCache_Purge(t *testing.T) {
	c, clk := newTestCache(time.Minute)
	c.Set("old1", "x")
	c.Set("old2", "x")
	clk.Advance(30 * time.Second)
	c.Set("fresh", "y")
	clk.Advance(45 * time.Second)

	assert.Equal(t, 2, c.Purge())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("fresh")
	assert.True(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCache_StartJanitor(t *testing.T) {
	c, clk := newTestCache(time.Minute)
	c.Set("a", "1")
	clk.Advance(2 * time.Minute)

	purged := make(chan int, 4)
	stop, err := c.StartJanitor("* * * * * *", func(n int) {
		select {
		case purged <- n:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	select {
	case n := <-purged:
		assert.Equal(t, 1, n)
	case <-time.After(3 * time.Second):
		t.Fatal("janitor did not run")
	}
	assert.Equal(t, 0, c.Len())
}

func TestCache_StartJanitor_BadSpec(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	_, err := c.StartJanitor("not a cron", nil)
	assert.Error(t, err)
}
