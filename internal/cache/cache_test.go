package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/model"
)

func TestNew_DisabledWithoutAddress(t *testing.T) {
	assert.Nil(t, New("", "", 0, time.Minute))
}

func TestNilClient_ActsAsMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.SetRecipe(ctx, &model.Recipe{ID: 1})
	assert.Nil(t, c.GetRecipe(ctx, 1))
	c.InvalidateRecipe(ctx, 1)

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestUnreachableRedis_FailsSafe(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	c := NewWithClient(rdb, time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Nil(t, c.GetRecipe(ctx, 9))
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestRecipeKey(t *testing.T) {
	assert.Equal(t, "recipe:12", RecipeKey(12))
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRecipeRoundTrip(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	c := NewWithClient(rdb, time.Minute)
	ctx := context.Background()

	c.SetRecipe(ctx, &model.Recipe{ID: 4, Title: "Soup", Ingredients: []string{"water"}, UserID: 2})
	require.True(t, mr.Exists("recipe:4"))

	got := c.GetRecipe(ctx, 4)
	require.NotNil(t, got)
	assert.Equal(t, "Soup", got.Title)
	assert.Equal(t, []string{"water"}, got.Ingredients)
	assert.Equal(t, uint(2), got.UserID)

	c.InvalidateRecipe(ctx, 4)
	assert.False(t, mr.Exists("recipe:4"))
	assert.Nil(t, c.GetRecipe(ctx, 4))
}

func TestRecipeExpiresAfterTTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	c := NewWithClient(rdb, time.Minute)
	ctx := context.Background()

	c.SetRecipe(ctx, &model.Recipe{ID: 1, Title: "Soup"})
	require.NotNil(t, c.GetRecipe(ctx, 1))

	mr.FastForward(2 * time.Minute)
	assert.Nil(t, c.GetRecipe(ctx, 1))
}

func TestWithNamespace_IsolatesKeys(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	base := NewWithClient(rdb, time.Minute)
	first := base.WithNamespace("boot-1")
	second := base.WithNamespace("boot-2")
	ctx := context.Background()

	first.SetRecipe(ctx, &model.Recipe{ID: 1, Title: "Soup"})

	assert.True(t, mr.Exists("boot-1:recipe:1"))
	assert.Nil(t, second.GetRecipe(ctx, 1))
	assert.Nil(t, base.GetRecipe(ctx, 1))
	require.NotNil(t, first.GetRecipe(ctx, 1))

	var disabled *Client
	assert.Nil(t, disabled.WithNamespace("boot-3"))
}
