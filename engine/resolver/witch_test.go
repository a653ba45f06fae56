package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nightwatch/engine/state"
)

func TestResolveWitchAction_SaveRecordsWolfKillSeat(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 2, CanSave: true, CanPoison: true}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchSave: true})
	assert.True(t, res.Valid)
	assert.Equal(t, 2, *res.Updates.SavedSeat)
}

func TestResolveWitchAction_SaveRejectsSelf(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 0, CanSave: true, CanPoison: true}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchSave: true})
	assert.False(t, res.Valid)
	assert.Equal(t, "not_self", res.RejectReason)
}

func TestResolveWitchAction_SaveRejectedWhenPotionAlreadyUsed(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 2, CanSave: false, CanPoison: true}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchSave: true})
	assert.False(t, res.Valid)
	assert.Equal(t, "cannot_save", res.RejectReason)
}

func TestResolveWitchAction_PoisonRecordsTarget(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 2, CanSave: true, CanPoison: true}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchPoisonTarget: intPtr(5)})
	assert.True(t, res.Valid)
	assert.Equal(t, 5, *res.Updates.PoisonedSeat)
}

func TestResolveWitchAction_PoisonRejectedWithoutPotion(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 2, CanSave: true, CanPoison: false}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchPoisonTarget: intPtr(5)})
	assert.False(t, res.Valid)
	assert.Equal(t, "cannot_poison", res.RejectReason)
}

func TestResolveWitchAction_SkippingBothLegsIsValid(t *testing.T) {
	s := &state.GameState{WitchContext: &state.WitchContext{WolfKillSeat: 2, CanSave: true, CanPoison: true}}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0})
	assert.True(t, res.Valid)
	assert.Nil(t, res.Updates.SavedSeat)
	assert.Nil(t, res.Updates.PoisonedSeat)
}

func TestResolveWitchAction_NoWitchContextRejected(t *testing.T) {
	s := &state.GameState{}
	res := ResolveWitchAction(Context{State: s}, Input{ActorSeat: 0, WitchSave: true})
	assert.False(t, res.Valid)
	assert.Equal(t, "no_witch_context", res.RejectReason)
}
