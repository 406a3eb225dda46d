package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCacheDelegates(t *testing.T) {
	getCmd := redis.NewStringResult("v", nil)
	setCmd := redis.NewStatusResult("OK", nil)
	closed := false

	f := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, "k", key)
			return getCmd
		},
		SetFn: func(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, "k", key)
			require.Equal(t, "v", value)
			require.Equal(t, time.Minute, ttl)
			return setCmd
		},
		CloseFn: func() error { closed = true; return nil },
	}

	require.Equal(t, getCmd, f.Get(context.Background(), "k"))
	require.Equal(t, setCmd, f.Set(context.Background(), "k", "v", time.Minute))
	require.NoError(t, f.Close())
	require.True(t, closed)
}

func TestFakeCachePanicsWhenUnset(t *testing.T) {
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", 0) })
	require.NoError(t, f.Close())
}
