// Redis-backed store of live refresh-token JTIs. A refresh token is valid for
// exactly one rotation: Consume deletes the key, so reuse fails.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRefreshInvalid = errors.New("refresh invalid")

type RefreshStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRefreshStore(rdb *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{rdb: rdb, ttl: ttl}
}

func (s *RefreshStore) key(adminID, jti string) string {
	return "refresh:" + adminID + ":" + jti
}

func (s *RefreshStore) Put(ctx context.Context, adminID, jti string) error {
	return s.rdb.Set(ctx, s.key(adminID, jti), "1", s.ttl).Err()
}

// Consume removes the JTI; a miss means the token was already rotated or revoked.
func (s *RefreshStore) Consume(ctx context.Context, adminID, jti string) error {
	n, err := s.rdb.Del(ctx, s.key(adminID, jti)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRefreshInvalid
	}
	return nil
}
