package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which Idempotency-Key created which payment.
// Key format: payments:idem:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the payment ID previously remembered for key.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Remember records that key created the payment with the given ID (expires
// after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key string, id int64) error {
	return s.client.Set(ctx, s.key(key), id, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return "payments:idem:" + k
}
