package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stats struct {
	OverallAvg *float64           `json:"overall_avg"`
	FieldAvg   map[string]float64 `json:"field_avg"`
	RaterCount int                `json:"rater_count"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := New(context.Background(), WithAddress(mr.Addr()), WithKeyPrefix("test:"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	avg := 4.5
	in := stats{OverallAvg: &avg, FieldAvg: map[string]float64{"f1": 4.5}, RaterCount: 2}
	require.NoError(t, c.Set(ctx, "exec:E1:2024-03", in, time.Minute))

	assert.True(t, mr.Exists("test:exec:E1:2024-03"))
	assert.Equal(t, time.Minute, mr.TTL("test:exec:E1:2024-03"))

	var out stats
	require.NoError(t, c.Get(ctx, "exec:E1:2024-03", &out))
	assert.Equal(t, in, out)
}

func TestCache_MissReturnsRedisNil(t *testing.T) {
	c, _ := newTestCache(t)

	var out stats
	err := c.Get(context.Background(), "absent", &out)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	mr.FastForward(2 * time.Second)

	var out int
	assert.ErrorIs(t, c.Get(ctx, "k", &out), redis.Nil)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))

	require.NoError(t, c.Delete(ctx, "a", "missing"))
	assert.False(t, mr.Exists("test:a"))
	assert.True(t, mr.Exists("test:b"))

	assert.NoError(t, c.Delete(ctx))
}

func TestCache_SetUnencodable(t *testing.T) {
	c, _ := newTestCache(t)

	err := c.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.ErrorContains(t, err, "encode cache value")
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), WithAddress(addr), WithDialTimeout(100*time.Millisecond))
	assert.ErrorContains(t, err, "redis ping")
}
