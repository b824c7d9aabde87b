package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nmehta/auth-sessions-api/internal/models"
)

// SessionCookie is the fixed name of the session cookie.
const SessionCookie = "chocolatechip"

// SessionStore is the injected session abstraction. Absence (unknown or
// expired session id) is a normal outcome, never an error.
type SessionStore interface {
	// Create allocates a fresh session for the user and persists it.
	Create(ctx context.Context, user models.User) (*models.Session, error)

	// Load fetches a session by id. Returns (nil, nil) when the session
	// does not exist or has expired.
	Load(ctx context.Context, sessionID string) (*models.Session, error)

	// Destroy removes a session. Returns false when there was nothing to
	// remove; destroying an absent session is not an error.
	Destroy(ctx context.Context, sessionID string) (bool, error)
}

// RedisSessionStore persists sessions in Redis, one JSON record per key with
// the TTL handled by Redis itself.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisSessionStore) Create(ctx context.Context, user models.User) (*models.Session, error) {
	now := time.Now()
	sess := &models.Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), b, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("destroy session: %w", err)
	}
	return n > 0, nil
}
