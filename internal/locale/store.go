// internal/locale/store.go
package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the key-value contract for locale documents. One document per
// (locale, brand) pair, replaced atomically as a whole JSON blob.
type Store interface {
	GetDocument(ctx context.Context, localeCode, brand string) (Document, bool, error)
	PutDocument(ctx context.Context, localeCode, brand string, doc Document) error
}

// StoreKey builds the KV key for a (locale, brand) pair.
func StoreKey(localeCode, brand string) string {
	return fmt.Sprintf("i18n:%s:%s", localeCode, brand)
}

// RedisStore reads locale documents from Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetDocument(ctx context.Context, localeCode, brand string) (Document, bool, error) {
	raw, err := s.client.Get(ctx, StoreKey(localeCode, brand)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("locale store read: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false, fmt.Errorf("locale document decode: %w", err)
	}
	return doc, true, nil
}

func (s *RedisStore) PutDocument(ctx context.Context, localeCode, brand string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("locale document encode: %w", err)
	}
	// Full-document replacement, no TTL: documents live until the next upload.
	if err := s.client.Set(ctx, StoreKey(localeCode, brand), data, 0).Err(); err != nil {
		return fmt.Errorf("locale store write: %w", err)
	}
	return nil
}
