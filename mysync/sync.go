// Package mysync provides a mutex that owns the value it guards.
package mysync

import (
	"sync"
)

type Mutex[T any] struct {
	mu sync.Mutex
	v  T
}

type MutexUnlock struct {
	mu *sync.Mutex
}

func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

func (mu *Mutex[T]) Lock() (*T, MutexUnlock) {
	mu.mu.Lock()
	return &mu.v, MutexUnlock{&mu.mu}
}

// Do runs fn with exclusive access to the guarded value.
func (mu *Mutex[T]) Do(fn func(v *T)) {
	v, unlock := mu.Lock()
	defer unlock.Unlock()
	fn(v)
}

func (u MutexUnlock) Unlock() { u.mu.Unlock() }
