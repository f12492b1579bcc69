package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "nlp:session:"

// RedisStore keeps sessions as JSON values whose TTL matches ExpiresAt,
// so Redis drops them without a sweeper. Safe to share between replicas.
type RedisStore struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	now := r.now()
	if err := validateNew(s, now); err != nil {
		return err
	}

	data, err := encode(s)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, redisKey(s.SessionID), data, s.ExpiresAt.Sub(now)).Result()
	if err != nil {
		return fmt.Errorf("session: redis setnx: %w", err)
	}
	if !created {
		return ErrIDInUse
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKey(sessionID)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	s, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if s.Expired(r.now()) {
		return nil, nil
	}
	return &s, nil
}

// Update rewrites an existing record. A record that already expired or was
// deleted is not recreated.
func (r *RedisStore) Update(ctx context.Context, s Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}

	now := r.now()
	if s.Expired(now) {
		return r.Delete(ctx, s.SessionID)
	}

	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.client.SetXX(ctx, redisKey(s.SessionID), data, s.ExpiresAt.Sub(now)).Err(); err != nil {
		return fmt.Errorf("session: redis setxx: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, redisKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

func encode(s Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("session: marshal: %w", err)
	}
	return data, nil
}

func decode(raw []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, fmt.Errorf("session: unmarshal: %w", err)
	}
	return s, nil
}
