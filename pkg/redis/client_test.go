package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestInit_BadURL(t *testing.T) {
	assert.Error(t, Init("not-a-redis-url", ""))
}

func TestSetGetDel(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "key", "value", time.Minute))

	got, err := Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, Del(ctx, "key"))
	_, err = Get(ctx, "key")
	assert.Error(t, err)
}

func TestSetNX(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	ok, err := SetNX(ctx, "lock", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SetNX(ctx, "lock", "2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetClient(t *testing.T) {
	setupMiniredis(t)
	assert.NotNil(t, GetClient())
}
