package state

import (
	"context"
	"sync"
)

// Mutation is one optimistic write: Apply edits the in-memory state first,
// Remote performs the persistent write, and Reconcile folds the remote
// result back in. If Remote fails the state is restored to its
// pre-mutation snapshot.
type Mutation[S any] struct {
	// Key serializes mutations that touch the same region of state.
	// Mutations with the same key never overlap.
	Key string

	Apply     func(s *S) error
	Remote    func(ctx context.Context) (interface{}, error)
	Reconcile func(s *S, result interface{}) error
}

// Store holds shared state and applies optimistic mutations to it.
type Store[S any] struct {
	mu    sync.RWMutex
	state S
	clone func(S) S

	keys keyedMutex
}

// NewStore wraps an initial state. clone must produce a deep copy; the
// store uses it for snapshots and for read views.
func NewStore[S any](initial S, clone func(S) S) *Store[S] {
	return &Store[S]{state: initial, clone: clone}
}

// View returns a deep copy of the current state.
func (st *Store[S]) View() S {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.clone(st.state)
}

// Replace swaps in a fresh state wholesale, discarding the old one.
func (st *Store[S]) Replace(s S) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = s
}

// Run executes one mutation: snapshot, optimistic apply, remote write,
// then reconcile or roll back. The snapshot and rollback happen under the
// state lock; the remote call does not hold it, so reads stay responsive
// while a write is in flight.
func (st *Store[S]) Run(ctx context.Context, m Mutation[S]) error {
	unlock := st.keys.lock(m.Key)
	defer unlock()

	st.mu.Lock()
	snapshot := st.clone(st.state)
	if err := m.Apply(&st.state); err != nil {
		st.mu.Unlock()
		return err
	}
	st.mu.Unlock()

	result, err := m.Remote(ctx)
	if err != nil {
		st.mu.Lock()
		st.state = snapshot
		st.mu.Unlock()
		return err
	}

	if m.Reconcile != nil {
		st.mu.Lock()
		defer st.mu.Unlock()
		return m.Reconcile(&st.state, result)
	}
	return nil
}

// keyedMutex hands out one mutex per key, created on demand.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
