package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, KeyPresetList, `[{"id":1}]`, 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, KeyPresetList)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, val)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, ProgressKey(1), "3/5", 1*time.Hour)
	_ = client.Set(ctx, ProgressKey(2), "1/5", 1*time.Hour)

	err := client.Delete(ctx, ProgressKey(1))
	require.NoError(t, err)

	_, err = client.Get(ctx, ProgressKey(1))
	assert.Error(t, err) // redis.Nil

	val, err := client.Get(ctx, ProgressKey(2))
	require.NoError(t, err)
	assert.Equal(t, "1/5", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, ProgressKey(1), "a", 1*time.Hour)
	_ = client.Set(ctx, ProgressKey(2), "b", 1*time.Hour)
	_ = client.Set(ctx, KeyPresetList, "c", 1*time.Hour)

	err := client.DeletePattern(ctx, KeySubscriptionProgress+"*")
	require.NoError(t, err)

	_, err = client.Get(ctx, ProgressKey(1))
	assert.Error(t, err)
	_, err = client.Get(ctx, ProgressKey(2))
	assert.Error(t, err)

	// Unrelated keys survive
	val, err := client.Get(ctx, KeyPresetList)
	require.NoError(t, err)
	assert.Equal(t, "c", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, KeyPresetList)
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, KeyPresetList, "x", time.Minute)

	exists, err = client.Exists(ctx, KeyPresetList)
	require.NoError(t, err)
	assert.True(t, exists)
}
