package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCache_PutGet(t *testing.T) {
	c := newCache[string](time.Hour, 10)
	id := uuid.New()

	c.put(id, "a")

	v, ok := c.get(id)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = c.get(uuid.New())
	assert.False(t, ok)
}

func TestCache_TTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache[int](time.Minute, 10)
	c.now = func() time.Time { return now }
	id := uuid.New()

	c.put(id, 1)
	now = now.Add(30 * time.Second)
	_, ok := c.get(id)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.get(id)
	assert.False(t, ok)

	// Expired entries are dropped on the next write.
	c.put(uuid.New(), 2)
	assert.Equal(t, 1, c.len())
}

func TestCache_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache[int](0, 0)
	c.now = func() time.Time { return now }
	id := uuid.New()

	c.put(id, 1)
	now = now.Add(1000 * time.Hour)

	_, ok := c.get(id)
	assert.True(t, ok)
}

func TestCache_MaxEntriesEvictsOldest(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newCache[int](0, 2)
	c.now = func() time.Time { return now }
	a, b, d := uuid.New(), uuid.New(), uuid.New()

	c.put(a, 1)
	now = now.Add(time.Second)
	c.put(b, 2)
	now = now.Add(time.Second)
	c.put(d, 3)

	assert.Equal(t, 2, c.len())
	_, ok := c.get(a)
	assert.False(t, ok)
	_, ok = c.get(b)
	assert.True(t, ok)
	_, ok = c.get(d)
	assert.True(t, ok)
}

func TestCache_OverwriteDoesNotEvict(t *testing.T) {
	c := newCache[int](0, 2)
	a, b := uuid.New(), uuid.New()

	c.put(a, 1)
	c.put(b, 2)
	c.put(a, 3)

	assert.Equal(t, 2, c.len())
	v, _ := c.get(a)
	assert.Equal(t, 3, v)
}

func TestCache_Concurrent(t *testing.T) {
	c := newCache[int](time.Hour, 50)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := uuid.New()
			c.put(id, i)
			c.get(id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, c.len())
}
