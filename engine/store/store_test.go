package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightwatch/engine/state"
)

func baseState() *state.GameState {
	return &state.GameState{RoomCode: "ABC123", HostUID: "host-1", Status: state.Unseated}
}

func TestInitialize_SetsRevisionOne(t *testing.T) {
	st := New()
	st.Initialize(baseState())
	s, rev := st.Snapshot()
	require.NotNil(t, s)
	assert.Equal(t, 1, rev)
}

func TestSetState_BumpsRevisionAndNormalizes(t *testing.T) {
	st := New()
	st.Initialize(baseState())
	st.SetState(baseState())
	s, rev := st.Snapshot()
	assert.Equal(t, 2, rev)
	assert.NotNil(t, s.Players, "normalize defaults nil Players to an empty slice")
}

func TestApplySnapshot_DropsStaleRevision(t *testing.T) {
	st := New()
	st.Initialize(baseState())
	st.SetState(baseState()) // revision 2

	st.ApplySnapshot(baseState(), 2) // not strictly newer, dropped
	_, rev := st.Snapshot()
	assert.Equal(t, 2, rev)

	st.ApplySnapshot(baseState(), 5)
	_, rev = st.Snapshot()
	assert.Equal(t, 5, rev)
}

func TestApplyOptimisticThenRollback_RestoresConfirmed(t *testing.T) {
	st := New()
	confirmed := baseState()
	confirmed.Status = state.Seated
	st.Initialize(confirmed)

	optimistic := baseState()
	optimistic.Status = state.Assigned
	st.ApplyOptimistic(optimistic)

	s, _ := st.Snapshot()
	assert.Equal(t, state.Assigned, s.Status)

	st.RollbackOptimistic()
	s, _ = st.Snapshot()
	assert.Equal(t, state.Seated, s.Status)
}

func TestRollbackOptimistic_NoopAfterNewerSnapshot(t *testing.T) {
	st := New()
	st.Initialize(baseState()) // revision 1, confirmedRevision 1

	st.ApplyOptimistic(baseState()) // revision stays 1

	newer := baseState()
	newer.Status = state.Ongoing
	st.ApplySnapshot(newer, 9) // supersedes the optimistic apply

	st.RollbackOptimistic() // revision(9) != confirmedRevision(9)? equal actually
	s, rev := st.Snapshot()
	assert.Equal(t, state.Ongoing, s.Status)
	assert.Equal(t, 9, rev)
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	st := New()
	var calls int
	unsubscribe := st.Subscribe(func(s *state.GameState, revision int) {
		calls++
	})

	st.Initialize(baseState())
	assert.Equal(t, 1, calls)

	unsubscribe()
	st.SetState(baseState())
	assert.Equal(t, 1, calls, "no further notifications after unsubscribe")
}

func TestSubscribe_PanickingListenerDoesNotPoisonOthers(t *testing.T) {
	st := New()
	var secondCalled bool
	st.Subscribe(func(s *state.GameState, revision int) {
		panic("boom")
	})
	st.Subscribe(func(s *state.GameState, revision int) {
		secondCalled = true
	})

	assert.NotPanics(t, func() { st.Initialize(baseState()) })
	assert.True(t, secondCalled)
}

func TestReset_RetainsListenersClearsState(t *testing.T) {
	st := New()
	var lastRevision = -1
	st.Subscribe(func(s *state.GameState, revision int) {
		lastRevision = revision
	})
	st.Initialize(baseState())

	st.Reset()
	s, rev := st.Snapshot()
	assert.Nil(t, s)
	assert.Equal(t, 0, rev)
	assert.Equal(t, 0, lastRevision)
}

func TestDestroy_ClearsEverythingIncludingListeners(t *testing.T) {
	st := New()
	var calls int
	st.Subscribe(func(s *state.GameState, revision int) { calls++ })
	st.Initialize(baseState())
	require.Equal(t, 1, calls)

	st.Destroy()
	st.SetState(baseState())
	assert.Equal(t, 1, calls, "destroyed store has no listeners left to notify")
}
