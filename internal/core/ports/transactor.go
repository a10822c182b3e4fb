package ports

import "context"

// Transactor runs fn as one unit of work. Implementations without
// transaction support simply call fn.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
