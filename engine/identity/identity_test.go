package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

func TestResolveRoleForChecks_PlainSeatNoSwapNoDisguise(t *testing.T) {
	s := &state.GameState{Players: []*state.Player{{Role: roles.Wolf}, {Role: roles.Seer}}}
	role, ok := ResolveRoleForChecks(s, 0)
	assert.True(t, ok)
	assert.Equal(t, roles.Wolf, role)
}

func TestResolveRoleForChecks_AppliesSwap(t *testing.T) {
	s := &state.GameState{
		Players:             []*state.Player{{Role: roles.Wolf}, {Role: roles.Seer}},
		CurrentNightResults: state.NightResults{SwappedSeats: &[2]int{0, 1}},
	}
	role, ok := ResolveRoleForChecks(s, 0)
	assert.True(t, ok)
	assert.Equal(t, roles.Seer, role, "seat 0 mirrors seat 1's role after the swap")
}

func TestResolveRoleForChecks_AppliesWolfRobotDisguise(t *testing.T) {
	s := &state.GameState{
		Players:          []*state.Player{{Role: roles.WolfRobot}},
		WolfRobotContext: &state.WolfRobotContext{LearnedSeat: 0, DisguisedRole: roles.Villager},
	}
	role, ok := ResolveRoleForChecks(s, 0)
	assert.True(t, ok)
	assert.Equal(t, roles.Villager, role)
}

func TestResolveRoleForChecks_ReportsFalseForOpenSeat(t *testing.T) {
	s := &state.GameState{Players: []*state.Player{nil}}
	_, ok := ResolveRoleForChecks(s, 0)
	assert.False(t, ok)
}

func TestTeamForChecks_ReturnsTeamOfEffectiveRole(t *testing.T) {
	s := &state.GameState{Players: []*state.Player{{Role: roles.Wolf}}}
	team, ok := TeamForChecks(s, 0)
	assert.True(t, ok)
	assert.Equal(t, roles.TeamWolf, team)
}
