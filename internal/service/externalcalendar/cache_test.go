package externalcalendar

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

func TestRedisCache_RoundTripAndExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRedisCache(client, 30*time.Second, "busy-cache:")
	ctx := context.Background()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	cache.Set(ctx, "k", nil)
	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Empty(t, got)

	cache.Set(ctx, "k", []domain.ExternalBusyWindow{window(5, 9, 10, "")})
	got, ok = cache.Get(ctx, "k")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "evt", got[0].SourceID)

	mr.FastForward(31 * time.Second)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_Disabled(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRedisCache(client, 0, "")
	cache.Set(context.Background(), "k", []domain.ExternalBusyWindow{window(5, 9, 10, "")})

	assert.Empty(t, mr.Keys())
}
