// Package reducer implements the pure (state, action) -> state transition
// and defines every StateAction variant the engine can apply. It is the
// only writer of currentNightResults, isAudioPlaying, and every other
// field spec.md §9 calls a "single source of truth".
package reducer

import (
	"nightwatch/engine/resolver"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// StateAction is the sealed interface every reducer input satisfies.
// Implementations are unexported-method-gated so no type outside this
// package can masquerade as a StateAction — the reducer's type switch is
// the sole authority on the variant set.
type StateAction interface {
	stateAction()
}

type base struct{}

func (base) stateAction() {}

// AssignRoles assigns rolled roles to seats, also carrying the seer
// label map computed once at assignment time.
type AssignRoles struct {
	base
	TemplateRoles []roles.ID
	Assignments   map[int]roles.ID // seat -> role
	SeerLabelMap  map[roles.ID]int
}

// StartNight begins night one at the given plan position.
type StartNight struct {
	base
	StepIndex int
	StepID    schema.ID
}

// AdvanceToNextAction moves to the next step, or to "night complete"
// when NextStepID is nil.
type AdvanceToNextAction struct {
	base
	NextStepIndex int
	NextStepID    *schema.ID
}

// EndNight finalizes the night, recording deaths.
type EndNight struct {
	base
	Deaths []int
}

// RestartGame returns the game to Seated, regenerating the
// role-reveal-animation nonce.
type RestartGame struct {
	base
	Nonce string
}

// ApplyResolverResult merges a resolver's Updates into
// currentNightResults (mirroring wolfKillDisabled/nightmareBlockedSeat at
// the top level) and writes any reveal slot.
type ApplyResolverResult struct {
	base
	Updates resolver.Updates
	Reveal  *resolver.Reveal
}

// PlayerViewedRole flips a seat's hasViewedRole flag.
type PlayerViewedRole struct {
	base
	Seat int
}

// UpdateTemplate truncates or extends Players to match a new template
// length.
type UpdateTemplate struct {
	base
	TemplateRoles []roles.ID
}

// ActionRejected is the only action that writes the public
// ActionRejected broadcast field.
type ActionRejected struct {
	base
	Notice state.RejectionNotice
}

// SetAudioPlaying is the only action (besides EndNight) allowed to
// change isAudioPlaying.
type SetAudioPlaying struct {
	base
	Playing bool
}

// SetWitchContext is computed by the handler on entry to witchAction.
type SetWitchContext struct {
	base
	Context state.WitchContext
}

// SetConfirmStatus is computed by the handler on entry to
// hunterConfirm/darkWolfKingConfirm.
type SetConfirmStatus struct {
	base
	Context state.ConfirmStatus
}

// SetUIHint overwrites ui.currentActorHint.
type SetUIHint struct {
	base
	Hint *state.ActorHint
}

// SetPendingAudioEffects overwrites the audio queue.
type SetPendingAudioEffects struct {
	base
	Effects []state.AudioEffect
}

// JoinPlayer seats a player (human or bot) into an open seat.
type JoinPlayer struct {
	base
	Seat        int
	UID         string
	DisplayName string
	AvatarURL   string
	IsBot       bool
}

// LeavePlayer vacates a seat.
type LeavePlayer struct {
	base
	Seat int
}

// SetWolfRobotHunterStatusViewed flips the gate flag once the wolfRobot
// player has acknowledged learning "hunter".
type SetWolfRobotHunterStatusViewed struct {
	base
}

// FillWithBots seats synthetic bot players into every open seat.
type FillWithBots struct {
	base
	DisplayNames []string // one per open seat, in seat order
}

// RecordProtocolAction appends the wire-stable audit record for one
// accepted intent.
type RecordProtocolAction struct {
	base
	Action state.ProtocolAction
}

// SetWolfVoteDeadline sets or clears the wolf-vote countdown.
type SetWolfVoteDeadline struct {
	base
	Deadline *int64
}

// SetPendingRevealAcks overwrites the set of reveal keys progression must
// wait on before it may advance again.
type SetPendingRevealAcks struct {
	base
	Keys []string
}

// AckReveal clears one pending reveal-ack key.
type AckReveal struct {
	base
	Key string
}
