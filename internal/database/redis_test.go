package database

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startickets/webtier/internal/config"
)

func startRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	host, portStr, _ := strings.Cut(mr.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	rdb, err := NewRedis(config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestNewRedisFailsWhenUnreachable(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}

func TestHashRoundTripWithTTL(t *testing.T) {
	mr, rdb := startRedis(t)
	ctx := context.Background()

	require.NoError(t, rdb.HealthCheck(ctx))
	require.NoError(t, rdb.HashSetWithTTL(ctx, "session:abc", map[string]string{"Role": "Organizer"}, 30*time.Minute))

	fields, err := rdb.HashGetAll(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Role": "Organizer"}, fields)
	assert.Equal(t, 30*time.Minute, mr.TTL("session:abc"))

	// Replacing drops stale fields
	require.NoError(t, rdb.HashSetWithTTL(ctx, "session:abc", map[string]string{"UserId": "7"}, time.Minute))
	fields, err = rdb.HashGetAll(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"UserId": "7"}, fields)

	require.NoError(t, rdb.Delete(ctx, "session:abc"))
	fields, err = rdb.HashGetAll(ctx, "session:abc")
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestIncrExpireTTL(t *testing.T) {
	_, rdb := startRedis(t)
	ctx := context.Background()

	n, err := rdb.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, rdb.Expire(ctx, "counter", time.Minute))
	ttl, err := rdb.TTL(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)
}
