package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sulochan19/image-conversion-api/internal/logger"
	"github.com/sulochan19/image-conversion-api/internal/models"
)

const conversionListKey = "conversions:list"

// ConversionCacheRepository caches the conversion listing in Redis
type ConversionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached listing
}

// NewConversionCacheRepository creates a new repository instance with the given TTL
func NewConversionCacheRepository(client *redis.Client, expiration time.Duration) *ConversionCacheRepository {
	return &ConversionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached conversion listing
func (r *ConversionCacheRepository) Get(ctx context.Context) ([]models.ConversionDB, error) {
	val, err := r.client.Get(ctx, conversionListKey).Result()
	if err != nil {
		logger.FromContext(ctx).Infow(
			"key", conversionListKey,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("conversion listing not found in cache")
		}
		return nil, err
	}

	var conversions []models.ConversionDB
	if err := json.Unmarshal([]byte(val), &conversions); err != nil {
		logger.FromContext(ctx).Infow(
			"key", conversionListKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"key", conversionListKey,
		"result", len(conversions),
		"error", nil,
	)

	return conversions, nil
}

// Set caches the conversion listing with the configured expiration
func (r *ConversionCacheRepository) Set(ctx context.Context, conversions []models.ConversionDB) error {
	data, err := json.Marshal(conversions)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, conversionListKey, data, r.exp).Err()

	logger.FromContext(ctx).Infow(
		"key", conversionListKey,
		"result", len(conversions),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing so the next read goes to the store
func (r *ConversionCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, conversionListKey).Err()

	logger.FromContext(ctx).Infow(
		"key", conversionListKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
