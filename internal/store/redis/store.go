package redis

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Store handles document persistence for all resource collections.
// It is constructed once at startup around the shared pooled client and
// holds no other state.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis-backed document store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return storeErr("ping store", err)
	}
	return nil
}

// storeErr wraps a transport failure as ErrStoreUnavailable so callers
// can distinguish infrastructure errors from absence. redis.Nil means
// "absent" and must never be passed here.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
