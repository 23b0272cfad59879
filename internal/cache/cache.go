package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipeshare/internal/model"
)

const recipeKeyPrefix = "recipe:"

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves as an always-missing cache.
type Client struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

// New creates a new Redis-backed cache. It returns nil when addr is empty,
// which disables caching.
func New(addr, password string, db int, ttl time.Duration) *Client {
	if addr == "" {
		return nil
	}
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return NewWithClient(redis.NewClient(opts), ttl)
}

// NewWithClient wraps an existing redis client.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{client: rdb, ttl: ttl}
}

// WithNamespace returns a client whose recipe keys are prefixed with ns.
// Stores that lose their data on restart use a fresh namespace per boot so
// entries written by an earlier process are never read back.
func (c *Client) WithNamespace(ns string) *Client {
	if c == nil {
		return nil
	}
	clone := *c
	clone.namespace = ns
	return &clone
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

// GetRecipe returns the cached recipe, or nil on a miss.
func (c *Client) GetRecipe(ctx context.Context, id uint) *model.Recipe {
	data, _ := c.Get(ctx, c.recipeKey(id))
	if data == nil {
		return nil
	}
	var recipe model.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil
	}
	return &recipe
}

// SetRecipe caches a recipe for the configured TTL.
func (c *Client) SetRecipe(ctx context.Context, recipe *model.Recipe) {
	if c == nil || recipe == nil {
		return
	}
	payload, err := json.Marshal(recipe)
	if err != nil {
		return
	}
	_ = c.Set(ctx, c.recipeKey(recipe.ID), payload, c.ttl)
}

// InvalidateRecipe drops a cached recipe.
func (c *Client) InvalidateRecipe(ctx context.Context, id uint) {
	if c == nil {
		return
	}
	_ = c.Delete(ctx, c.recipeKey(id))
}

// RecipeKey is the redis key for a recipe id.
func RecipeKey(id uint) string {
	return fmt.Sprintf("%s%d", recipeKeyPrefix, id)
}

func (c *Client) recipeKey(id uint) string {
	if c.namespace == "" {
		return RecipeKey(id)
	}
	return c.namespace + ":" + RecipeKey(id)
}
