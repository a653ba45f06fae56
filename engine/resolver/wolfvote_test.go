package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

func TestResolveWolfKill_NonWolfVoterRejected(t *testing.T) {
	s := &state.GameState{Players: playersWithRoles(roles.Villager, roles.Wolf)}
	res := ResolveWolfKill(Context{State: s}, Input{ActorSeat: 0, Target: intPtr(1)})
	assert.False(t, res.Valid)
	assert.Equal(t, "not_wolf_voter", res.RejectReason)
}

func TestResolveWolfKill_RecordsBallot(t *testing.T) {
	s := &state.GameState{Players: playersWithRoles(roles.Wolf, roles.Villager)}
	res := ResolveWolfKill(Context{State: s}, Input{ActorSeat: 0, Target: intPtr(1)})
	assert.True(t, res.Valid)
	assert.Equal(t, 0, res.Updates.WolfVote.Seat)
	assert.Equal(t, 1, res.Updates.WolfVote.Target)
}

func TestResolveWolfKill_SkipRecordsEmptyKillTarget(t *testing.T) {
	s := &state.GameState{Players: playersWithRoles(roles.Wolf, roles.Villager)}
	res := ResolveWolfKill(Context{State: s}, Input{ActorSeat: 0, Skip: true})
	assert.True(t, res.Valid)
	assert.Equal(t, state.EmptyKillTarget, res.Updates.WolfVote.Target)
}

func TestResolveWolfKill_ImmuneTargetRejected(t *testing.T) {
	s := &state.GameState{Players: playersWithRoles(roles.Wolf, roles.SpiritKnight)}
	res := ResolveWolfKill(Context{State: s}, Input{ActorSeat: 0, Target: intPtr(1)})
	assert.False(t, res.Valid, "spiritKnight is immune to the wolf kill")
}

func TestResolveWolfKill_NightmareCannotVote(t *testing.T) {
	// Nightmare sees the wolf meeting but does not cast a kill ballot.
	s := &state.GameState{Players: playersWithRoles(roles.Nightmare, roles.Villager)}
	res := ResolveWolfKill(Context{State: s}, Input{ActorSeat: 0, Target: intPtr(1)})
	assert.False(t, res.Valid)
}
