// Package store implements the Game Store (spec.md §4.10): the single
// mutable resource holding (state|null, revision). Modeled on the
// teacher's GameManager — a mutex-guarded struct with a logger — but
// narrowed to one room's state plus revision and listener bookkeeping,
// since spec.md keeps multi-room routing (the Router) at the transport
// shell.
package store

import (
	"sync"

	"nightwatch/engine/normalize"
	"nightwatch/engine/state"
	"nightwatch/pkg/logger"
)

// Listener is notified on every store mutation, including reset.
type Listener func(s *state.GameState, revision int)

type subscription struct {
	id int
	fn Listener
}

// Store holds one room's authoritative GameState and revision counter.
// The host uses SetState; clients are expected to use ApplySnapshot /
// ApplyOptimistic / RollbackOptimistic. No other path may mutate it.
type Store struct {
	mu                sync.Mutex
	current           *state.GameState
	revision          int
	confirmed         *state.GameState
	confirmedRevision int
	listeners         []subscription
	nextID            int
}

// New returns an empty store (state=nil, revision=0).
func New() *Store {
	return &Store{}
}

// Initialize seeds the store with an initial state at revision 1.
func (st *Store) Initialize(s *state.GameState) {
	st.mu.Lock()
	st.current = s
	st.revision = 1
	st.confirmed = s
	st.confirmedRevision = 1
	listeners, cur, rev := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, cur, rev)
}

// SetState is the host's write path: normalize and bump revision.
func (st *Store) SetState(s *state.GameState) {
	st.mu.Lock()
	normalized := normalize.Normalize(s)
	st.current = normalized
	st.revision++
	st.confirmed = normalized
	st.confirmedRevision = st.revision
	listeners, cur, rev := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, cur, rev)
}

// ApplySnapshot accepts an authoritative snapshot iff its revision is
// strictly newer than the store's current revision; stale/duplicate
// snapshots are silently dropped (spec.md §5's "late/out-of-order
// snapshots are dropped").
func (st *Store) ApplySnapshot(s *state.GameState, revision int) {
	st.mu.Lock()
	if revision <= st.revision {
		st.mu.Unlock()
		return
	}
	normalized := normalize.Normalize(s)
	st.current = normalized
	st.revision = revision
	st.confirmed = normalized
	st.confirmedRevision = revision
	listeners, cur, rev := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, cur, rev)
}

// ApplyOptimistic sets state locally without bumping revision, so a
// subsequent authoritative snapshot can supersede it cleanly.
func (st *Store) ApplyOptimistic(s *state.GameState) {
	st.mu.Lock()
	st.current = normalize.Normalize(s)
	listeners, cur, rev := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, cur, rev)
}

// RollbackOptimistic restores the last confirmed state iff the store's
// revision is still the one that was confirmed — i.e. no newer
// authoritative snapshot has arrived in the meantime, in which case the
// rollback is a no-op (that snapshot already superseded the optimistic
// apply).
func (st *Store) RollbackOptimistic() {
	st.mu.Lock()
	if st.revision != st.confirmedRevision {
		st.mu.Unlock()
		return
	}
	st.current = st.confirmed
	listeners, cur, rev := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, cur, rev)
}

// Subscribe registers listener and returns an unsubscribe func.
func (st *Store) Subscribe(listener Listener) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.listeners = append(st.listeners, subscription{id: id, fn: listener})
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		for i, sub := range st.listeners {
			if sub.id == id {
				st.listeners = append(st.listeners[:i], st.listeners[i+1:]...)
				return
			}
		}
	}
}

// Reset clears state to (nil, 0). Listeners are retained and notified
// with (nil, 0), per spec.md §4.10.
func (st *Store) Reset() {
	st.mu.Lock()
	st.current = nil
	st.revision = 0
	st.confirmed = nil
	st.confirmedRevision = 0
	listeners, _, _ := st.snapshotLocked()
	st.mu.Unlock()

	st.notify(listeners, nil, 0)
}

// Destroy tears the store down completely, including listeners. Test
// only, per spec.md §4.10.
func (st *Store) Destroy() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.current = nil
	st.revision = 0
	st.confirmed = nil
	st.confirmedRevision = 0
	st.listeners = nil
}

// Snapshot returns the current (state, revision) pair.
func (st *Store) Snapshot() (*state.GameState, int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current, st.revision
}

// snapshotLocked copies the listener list and current (state, revision)
// while st.mu is held, so callers can release the lock before invoking
// listeners (spec.md §5: "must not call back into the store
// re-entrantly with mutating operations" — released lock plus a copied
// listener slice keeps a reentrant Subscribe/unsubscribe from
// deadlocking or racing the slice being iterated).
func (st *Store) snapshotLocked() ([]subscription, *state.GameState, int) {
	listeners := append([]subscription(nil), st.listeners...)
	return listeners, st.current, st.revision
}

// notify invokes every listener synchronously. A panicking listener is
// recovered and logged so it cannot poison the others, per spec.md
// §4.10's "a throwing listener must not poison others".
func (st *Store) notify(listeners []subscription, s *state.GameState, revision int) {
	log := logger.GetLogger()
	for _, sub := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error("store: listener panicked: %v", r)
				}
			}()
			sub.fn(s, revision)
		}()
	}
}
