package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sales/src/sales/domain/port"
)

// RedisCacheService implementa CacheService sobre Redis
// Los valores se serializan como JSON
type RedisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService crea una nueva instancia del servicio de cache
func NewRedisCacheService(client *redis.Client) port.CacheService {
	return &RedisCacheService{
		client: client,
	}
}

// Get deserializa el valor de la clave en dest; false si la clave no existe
func (c *RedisCacheService) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("error decoding cache key %s: %w", key, err)
	}

	return true, nil
}

// Set serializa y guarda el valor con el TTL indicado
func (c *RedisCacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding cache key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error writing cache key %s: %w", key, err)
	}

	return nil
}

// Remove elimina la clave del cache
func (c *RedisCacheService) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("error removing cache key %s: %w", key, err)
	}
	return nil
}
