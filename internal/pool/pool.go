// Package pool provides typed object pooling for kli parsing.
// Used by kli.Set.Parse to reuse scan sessions across calls.
package pool

import (
	"sync"
)

// Pool is a generic, type-safe wrapper around sync.Pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called on Put so no state outlives a use
}

// New creates a pool; reset may be nil.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
		reset: reset,
	}
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put resets obj and returns it to the pool
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}
