package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

func TestGateStatePresent_RejectsNilState(t *testing.T) {
	ok, reason := gateStatePresent(nil)
	assert.False(t, ok)
	assert.Equal(t, ReasonNoState, reason)
}

func TestGateHostOnly_RejectsNonHostUID(t *testing.T) {
	s := &state.GameState{HostUID: "host-1"}
	ok, reason := gateHostOnly(s, "someone-else")
	assert.False(t, ok)
	assert.Equal(t, ReasonHostOnly, reason)
}

func TestGateStatus_RejectsMismatch(t *testing.T) {
	s := &state.GameState{Status: state.Seated}
	ok, reason := gateStatus(s, state.Ongoing)
	assert.False(t, ok)
	assert.Equal(t, ReasonInvalidStatus, reason)
}

func TestGateNotAudioPlaying_RejectsWhilePlaying(t *testing.T) {
	s := &state.GameState{IsAudioPlaying: true}
	ok, reason := gateNotAudioPlaying(s)
	assert.False(t, ok)
	assert.Equal(t, ReasonForbiddenAudio, reason)
}

func TestGateWolfRobotHunterAck_BlocksUntilAcknowledged(t *testing.T) {
	s := &state.GameState{WolfRobotReveal: &state.WolfRobotRevealSlot{LearnedRoleID: roles.Hunter}}
	ok, reason := gateWolfRobotHunterAck(s)
	assert.False(t, ok)
	assert.Equal(t, ReasonWolfRobotHunterAck, reason)

	s.WolfRobotHunterStatusViewed = true
	ok, _ = gateWolfRobotHunterAck(s)
	assert.True(t, ok)
}

func TestGateWolfRobotHunterAck_IgnoresNonHunterDisguise(t *testing.T) {
	s := &state.GameState{WolfRobotReveal: &state.WolfRobotRevealSlot{LearnedRoleID: roles.Villager}}
	ok, _ := gateWolfRobotHunterAck(s)
	assert.True(t, ok)
}

func TestHandleRevealAck_RejectsUnknownKey(t *testing.T) {
	s := &state.GameState{}
	res := HandleRevealAck(s, 1, "piperHypnotizedReveal")
	assert.False(t, res.Success)
	assert.Equal(t, ReasonInvalidAction, res.Reason)
}

func TestHandleRevealAck_AcceptsPendingKey(t *testing.T) {
	s := &state.GameState{PendingRevealAcks: map[string]bool{"piperHypnotizedReveal:1": true}}
	res := HandleRevealAck(s, 1, "piperHypnotizedReveal")
	assert.True(t, res.Success)
}
