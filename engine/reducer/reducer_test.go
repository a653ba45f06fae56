package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightwatch/engine/resolver"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

func seat(n int) *int { return &n }

func baseState() *state.GameState {
	return &state.GameState{
		RoomCode: "ABC123",
		HostUID:  "host-1",
		Status:   state.Seated,
		Players: []*state.Player{
			{SeatNumber: 0, UID: "u0"},
			{SeatNumber: 1, UID: "u1"},
		},
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := baseState()
	next := Reduce(s, PlayerViewedRole{Seat: 0})
	assert.False(t, s.Players[0].HasViewedRole)
	assert.True(t, next.Players[0].HasViewedRole)
}

func TestReduce_PanicsOnUnknownVariant(t *testing.T) {
	assert.Panics(t, func() {
		Reduce(baseState(), unknownAction{})
	})
}

type unknownAction struct{ base }

func TestAssignRoles_SetsRolesAndStatus(t *testing.T) {
	s := baseState()
	next := Reduce(s, AssignRoles{
		TemplateRoles: []roles.ID{roles.Wolf, roles.Seer},
		Assignments:   map[int]roles.ID{0: roles.Wolf, 1: roles.Seer},
		SeerLabelMap:  map[roles.ID]int{roles.Seer: 1},
	})
	assert.Equal(t, state.Assigned, next.Status)
	assert.Equal(t, roles.Wolf, next.Players[0].Role)
	assert.Equal(t, roles.Seer, next.Players[1].Role)
	assert.False(t, next.Players[0].HasViewedRole, "reassigning clears any stale hasViewedRole")
}

func TestStartNight_ResetsNightScopedFields(t *testing.T) {
	s := baseState()
	s.Actions = []state.ProtocolAction{{SchemaID: schema.GuardProtect}}
	s.LastNightDeaths = []int{3}
	next := Reduce(s, StartNight{StepIndex: 0, StepID: schema.WolfKill})
	assert.Equal(t, state.Ongoing, next.Status)
	assert.Equal(t, 0, next.CurrentStepIndex)
	assert.Equal(t, schema.WolfKill, *next.CurrentStepID)
	assert.Empty(t, next.Actions)
	assert.Nil(t, next.LastNightDeaths)
}

func TestAdvanceToNextAction_ClearsPerStepContexts(t *testing.T) {
	s := baseState()
	s.WitchContext = &state.WitchContext{WolfKillSeat: 1}
	s.ConfirmStatus = &state.ConfirmStatus{CanShoot: true}
	nextID := schema.SeerCheck
	next := Reduce(s, AdvanceToNextAction{NextStepIndex: 1, NextStepID: &nextID})
	assert.Equal(t, 1, next.CurrentStepIndex)
	assert.Equal(t, schema.SeerCheck, *next.CurrentStepID)
	assert.Nil(t, next.WitchContext)
	assert.Nil(t, next.ConfirmStatus)
}

func TestEndNight_RecordsDeathsAndStopsAudio(t *testing.T) {
	s := baseState()
	s.IsAudioPlaying = true
	next := Reduce(s, EndNight{Deaths: []int{0, 1}})
	assert.Equal(t, state.Ended, next.Status)
	assert.Equal(t, []int{0, 1}, next.LastNightDeaths)
	assert.Equal(t, -1, next.CurrentStepIndex)
	assert.Nil(t, next.CurrentStepID)
	assert.False(t, next.IsAudioPlaying)
}

func TestRestartGame_ReturnsToSeatedAndClearsRoles(t *testing.T) {
	s := baseState()
	s.Status = state.Ended
	s.Players[0].Role = roles.Wolf
	s.Players[0].HasViewedRole = true
	s.LastNightDeaths = []int{0}
	next := Reduce(s, RestartGame{Nonce: "abc"})
	assert.Equal(t, state.Seated, next.Status)
	assert.Empty(t, next.Players[0].Role)
	assert.False(t, next.Players[0].HasViewedRole)
	assert.Nil(t, next.LastNightDeaths)
	assert.Equal(t, "abc", next.RoleRevealRandomNonce)
}

func TestApplyResolverResult_MergesUpdatesAndMirrorsTopLevelFields(t *testing.T) {
	s := baseState()
	next := Reduce(s, ApplyResolverResult{
		Updates: resolver.Updates{
			GuardedSeat:      seat(1),
			BlockedSeat:      seat(0),
			WolfKillDisabled: boolPtrHelper(true),
		},
	})
	assert.Equal(t, 1, *next.CurrentNightResults.GuardedSeat)
	assert.Equal(t, 0, *next.CurrentNightResults.BlockedSeat)
	assert.Equal(t, 0, *next.NightmareBlockedSeat)
	assert.True(t, next.WolfKillDisabled)
}

func boolPtrHelper(b bool) *bool { return &b }

func TestApplyResolverResult_WritesRevealSlot(t *testing.T) {
	s := baseState()
	result := roles.ResultWolf
	next := Reduce(s, ApplyResolverResult{
		Reveal: &resolver.Reveal{Kind: schema.RevealSeer, Single: &result},
	})
	require.NotNil(t, next.SeerReveal)
	assert.Equal(t, roles.ResultWolf, *next.SeerReveal)
}

func TestApplyResolverResult_WolfVoteAccumulatesBallots(t *testing.T) {
	s := baseState()
	next := Reduce(s, ApplyResolverResult{
		Updates: resolver.Updates{WolfVote: &resolver.WolfVoteUpdate{Seat: 0, Target: 1}},
	})
	next = Reduce(next, ApplyResolverResult{
		Updates: resolver.Updates{WolfVote: &resolver.WolfVoteUpdate{Seat: 1, Target: 1}},
	})
	assert.Equal(t, map[int]int{0: 1, 1: 1}, next.CurrentNightResults.WolfVotesBySeat)
}

func TestPlayerViewedRole_AdvancesToReadyWhenAllHaveViewed(t *testing.T) {
	s := baseState()
	s.Status = state.Assigned
	s.Players[0].HasViewedRole = true
	next := Reduce(s, PlayerViewedRole{Seat: 1})
	assert.Equal(t, state.Ready, next.Status)
}

func TestPlayerViewedRole_PanicsOnEmptySeat(t *testing.T) {
	s := baseState()
	s.Players[0] = nil
	assert.Panics(t, func() {
		Reduce(s, PlayerViewedRole{Seat: 0})
	})
}

func TestJoinPlayer_SeatsPlayerAndFillsToSeated(t *testing.T) {
	s := baseState()
	s.Players[1] = nil
	s.Status = state.Unseated
	next := Reduce(s, JoinPlayer{Seat: 1, UID: "u9", DisplayName: "Nine"})
	require.NotNil(t, next.Players[1])
	assert.Equal(t, "u9", next.Players[1].UID)
	assert.Equal(t, state.Seated, next.Status)
}

func TestLeavePlayer_VacatesSeatAndReopensLobby(t *testing.T) {
	s := baseState()
	s.Status = state.Seated
	next := Reduce(s, LeavePlayer{Seat: 0})
	assert.Nil(t, next.Players[0])
	assert.Equal(t, state.Unseated, next.Status)
}

func TestFillWithBots_SeatsBotsIntoOpenSeats(t *testing.T) {
	s := baseState()
	s.Players[1] = nil
	next := Reduce(s, FillWithBots{DisplayNames: []string{"Bot Two"}})
	require.NotNil(t, next.Players[1])
	assert.True(t, next.Players[1].IsBot)
	assert.Equal(t, "Bot Two", next.Players[1].DisplayName)
	assert.True(t, next.DebugMode.BotsEnabled)
	assert.Equal(t, state.Seated, next.Status)
}

func TestUpdateTemplate_ResizesPlayersAndClearsRoles(t *testing.T) {
	s := baseState()
	s.Players[0].Role = roles.Wolf
	next := Reduce(s, UpdateTemplate{TemplateRoles: []roles.ID{roles.Wolf, roles.Seer, roles.Villager}})
	assert.Len(t, next.Players, 3)
	assert.Empty(t, next.Players[0].Role)
}

func TestSetWolfRobotHunterStatusViewed_SetsFlag(t *testing.T) {
	next := Reduce(baseState(), SetWolfRobotHunterStatusViewed{})
	assert.True(t, next.WolfRobotHunterStatusViewed)
}

func TestSetPendingRevealAcks_ThenAckRevealClearsKey(t *testing.T) {
	s := baseState()
	next := Reduce(s, SetPendingRevealAcks{Keys: []string{"seat-0"}})
	assert.True(t, next.PendingRevealAcks["seat-0"])
	next = Reduce(next, AckReveal{Key: "seat-0"})
	assert.False(t, next.PendingRevealAcks["seat-0"])
}

func TestRecordProtocolAction_Appends(t *testing.T) {
	s := baseState()
	next := Reduce(s, RecordProtocolAction{Action: state.ProtocolAction{SchemaID: schema.GuardProtect, ActorSeat: 0}})
	require.Len(t, next.Actions, 1)
	assert.Equal(t, schema.GuardProtect, next.Actions[0].SchemaID)
}

func TestSetWolfVoteDeadline_SetsValue(t *testing.T) {
	deadline := int64(12345)
	next := Reduce(baseState(), SetWolfVoteDeadline{Deadline: &deadline})
	require.NotNil(t, next.WolfVoteDeadline)
	assert.Equal(t, deadline, *next.WolfVoteDeadline)
}

func TestActionRejected_WritesNotice(t *testing.T) {
	next := Reduce(baseState(), ActionRejected{Notice: state.RejectionNotice{Reason: "no_target"}})
	require.NotNil(t, next.ActionRejected)
	assert.Equal(t, "no_target", next.ActionRejected.Reason)
}

func TestSetPendingAudioEffects_OverwritesQueue(t *testing.T) {
	next := Reduce(baseState(), SetPendingAudioEffects{Effects: []state.AudioEffect{{AudioKey: "wolf_open"}}})
	require.Len(t, next.PendingAudioEffects, 1)
	assert.Equal(t, "wolf_open", next.PendingAudioEffects[0].AudioKey)
}
