package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLGetSet(t *testing.T) {
	c := NewTTL[string](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestTTLExpiry(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	c := NewTTLWithClock[int](5*time.Minute, func() time.Time { return now })

	c.Set("k", 42)

	now = now.Add(4 * time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry must expire after its lifetime")
}

func TestTTLSetRestartsLifetime(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	c := NewTTLWithClock[int](5*time.Minute, func() time.Time { return now })

	c.Set("k", 1)
	now = now.Add(4 * time.Minute)
	c.Set("k", 2)
	now = now.Add(4 * time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestTTLInvalidate(t *testing.T) {
	c := NewTTL[string](time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Purge()
	_, ok = c.Get("b")
	assert.False(t, ok)
}
