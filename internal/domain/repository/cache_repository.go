package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetJSON декодирует закешированное значение в dest; false при промахе
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)

	// SetJSON кодирует value в JSON и сохраняет с TTL
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
