// Package hashing runs bcrypt on a fixed set of worker goroutines so a burst
// of logins or sign-ups cannot spawn an unbounded number of CPU-bound hashes.
package hashing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dailymate/dailymate-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	queueBuffer    = 256
)

// ErrPoolClosed is returned for jobs submitted after the pool stopped.
var ErrPoolClosed = errors.New("hashing pool closed")

type job struct {
	ctx context.Context
	run func()
}

// Pool is a bounded bcrypt executor. It satisfies ports.PasswordHasher.
type Pool struct {
	jobs    chan job
	quit    chan struct{}
	workers int
	cost    int
	log     zerolog.Logger
}

// NewPool creates a Pool with numWorkers workers hashing at cost.
// If numWorkers <= 0, defaultWorkers is used; an out-of-range cost falls
// back to bcrypt.DefaultCost.
func NewPool(numWorkers, cost int, log zerolog.Logger) *Pool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Pool{
		jobs:    make(chan job, queueBuffer),
		quit:    make(chan struct{}),
		workers: numWorkers,
		cost:    cost,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which every submission fails with ErrPoolClosed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx, i)
	}
	go func() {
		<-ctx.Done()
		close(p.quit)
	}()
}

// Hash returns the bcrypt hash of plain.
func (p *Pool) Hash(ctx context.Context, plain string) (string, error) {
	var (
		hash []byte
		err  error
	)
	if subErr := p.submit(ctx, "hash", func() {
		hash, err = bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	}); subErr != nil {
		return "", subErr
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether plain matches hash.
func (p *Pool) Compare(ctx context.Context, hash, plain string) (bool, error) {
	var err error
	if subErr := p.submit(ctx, "compare", func() {
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	}); subErr != nil {
		return false, subErr
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password: %w", err)
	}
}

// submit queues fn and blocks until a worker has run it or ctx ends.
func (p *Pool) submit(ctx context.Context, op string, fn func()) error {
	done := make(chan struct{})
	j := job{ctx: ctx, run: func() {
		start := time.Now()
		fn()
		metrics.HashDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		close(done)
	}}

	select {
	case <-p.quit:
		return ErrPoolClosed
	default:
	}

	select {
	case p.jobs <- j:
		metrics.HashQueueDepth.Set(float64(len(p.jobs)))
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// A job still queued when the workers exit is never run.
	select {
	case <-done:
		return nil
	case <-p.quit:
		select {
		case <-done:
			return nil
		default:
			return ErrPoolClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			metrics.HashQueueDepth.Set(float64(len(p.jobs)))
			if j.ctx.Err() != nil {
				p.log.Debug().Int("worker_id", id).Msg("skipping abandoned hash job")
				continue
			}
			j.run()
		}
	}
}
