package ports

import (
	"context"
	"time"
)

// SessionStore keeps server-side sessions. The only payload of a session is
// the account ID; everything else is reloaded from storage per request.
type SessionStore interface {
	Create(ctx context.Context, accountID string, ttl time.Duration) (string, error)
	// Get yields domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (string, error)
	Touch(ctx context.Context, sessionID string, ttl time.Duration) error
	Destroy(ctx context.Context, sessionID string) error
}
