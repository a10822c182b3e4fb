package redis

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const (
	sessionPrefix  = "session:"
	sessionIDBytes = 32
	maxCreateTries = 3
	defaultSessTTL = time.Hour
)

// SessionStore keeps sessions in Redis.
// Key format: session:<id> → account ID, expiring after the session TTL.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create opens a session for accountID under a fresh random ID.
func (s *SessionStore) Create(ctx context.Context, accountID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultSessTTL
	}
	for i := 0; i < maxCreateTries; i++ {
		id, err := newSessionID()
		if err != nil {
			return "", err
		}
		ok, err := s.client.SetNX(ctx, s.key(id), accountID, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("create session: %w", err)
		}
		if ok {
			return id, nil
		}
	}
	return "", errors.New("create session: could not allocate a unique id")
}

// Get returns the account ID bound to sessionID.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", domain.ErrSessionNotFound
	}
	accountID, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return accountID, nil
}

// Touch extends the expiry of an existing session.
func (s *SessionStore) Touch(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultSessTTL
	}
	ok, err := s.client.Expire(ctx, s.key(sessionID), ttl).Result()
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Destroy removes the session. Destroying a missing session is not an error.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return sessionPrefix + sessionID
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
