package port

import (
	"context"
	"time"
)

// CacheService define el contrato del cache de lectura
// Las entradas son hints descartables: un miss o una entrada expirada nunca
// produce un resultado incorrecto, solo un camino más lento
type CacheService interface {
	// Get deserializa el valor de la clave en dest
	// Retorna false si la clave no existe
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set serializa y guarda el valor con el TTL indicado
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Remove elimina la clave del cache
	Remove(ctx context.Context, key string) error
}
