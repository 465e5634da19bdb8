package sheets

import (
	"testing"
	"time"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *model.Table {
	t := model.NewTable([]string{"key", "value"})
	t.Append("title", "trip")
	return t
}

func TestLoadCache_PutGet(t *testing.T) {
	cache := newLoadCache(time.Minute)
	h := service.Handle{SpreadsheetID: "s", Sheet: "overview"}

	_, ok := cache.get(h)
	assert.False(t, ok)

	cache.put(h, testTable())
	got, ok := cache.get(h)
	require.True(t, ok)
	assert.Equal(t, "trip", got.Get(0, "value"))
}

func TestLoadCache_Expiry(t *testing.T) {
	cache := newLoadCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	h := service.Handle{Sheet: "overview"}
	cache.put(h, testTable())

	now = now.Add(59 * time.Second)
	_, ok := cache.get(h)
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = cache.get(h)
	assert.False(t, ok, "entry past TTL is dropped")
}

func TestLoadCache_Invalidate(t *testing.T) {
	cache := newLoadCache(time.Minute)
	h := service.Handle{Sheet: "movies"}
	other := service.Handle{Sheet: "events"}

	cache.put(h, testTable())
	cache.put(other, testTable())
	cache.invalidate(h)

	_, ok := cache.get(h)
	assert.False(t, ok)
	_, ok = cache.get(other)
	assert.True(t, ok, "invalidation is per handle, not process-wide")
}

func TestLoadCache_CopyIsolation(t *testing.T) {
	cache := newLoadCache(time.Minute)
	h := service.Handle{Sheet: "overview"}

	original := testTable()
	cache.put(h, original)
	original.Set(0, "value", "mutated after put")

	got, ok := cache.get(h)
	require.True(t, ok)
	assert.Equal(t, "trip", got.Get(0, "value"))

	got.Set(0, "value", "mutated after get")
	again, _ := cache.get(h)
	assert.Equal(t, "trip", again.Get(0, "value"))
}

func TestLoadCache_ZeroTTLDisables(t *testing.T) {
	cache := newLoadCache(0)
	h := service.Handle{Sheet: "overview"}
	cache.put(h, testTable())

	_, ok := cache.get(h)
	assert.False(t, ok)
}
