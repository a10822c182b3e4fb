package ports

import "context"

// PasswordHasher runs slow password hashing off the request goroutines.
type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	// Compare reports whether plain matches hash. A mismatch is not an error.
	Compare(ctx context.Context, hash, plain string) (bool, error)
}
