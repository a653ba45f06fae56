package handler

import (
	"strconv"

	"github.com/google/uuid"

	"nightwatch/engine/reducer"
	"nightwatch/engine/resolver"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// ActionInput is the generic night-action intent (spec.md §6's ACTION
// message), already demultiplexed from the wire: actorSeat is the
// seat claiming to submit schemaID's action.
type ActionInput struct {
	ActorSeat int
	Target    *int
	Targets   []int
	Confirm   bool
	Skip      bool

	WitchSave         bool
	WitchPoisonTarget *int
}

// HandleAction validates the submitting seat is allowed to act on the
// current step, validates the schema's declared constraints, dispatches
// to the matching resolver, and converts its result into reducer actions
// or a rejection.
func HandleAction(s *state.GameState, schemaID schema.ID, in ActionInput, coinFlip func() bool) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejectedFor(schemaID, in.ActorSeat, reason)
	}
	if ok, reason := gateStatus(s, state.Ongoing); !ok {
		return rejectedFor(schemaID, in.ActorSeat, reason)
	}
	if ok, reason := gateNotAudioPlaying(s); !ok {
		return rejectedFor(schemaID, in.ActorSeat, reason)
	}
	if s.CurrentStepID == nil || *s.CurrentStepID != schemaID {
		return rejectedFor(schemaID, in.ActorSeat, ReasonInvalidStep)
	}

	actorRole, ok := s.RoleAtSeat(in.ActorSeat)
	if !ok {
		return rejectedFor(schemaID, in.ActorSeat, ReasonInvalidSeat)
	}

	sch, ok := schema.Get(schemaID)
	if !ok {
		return rejectedFor(schemaID, in.ActorSeat, ReasonInvalidAction)
	}
	if !actsOnSchema(actorRole, schemaID) {
		return rejectedFor(schemaID, in.ActorSeat, ReasonInvalidAction)
	}

	if !in.Skip {
		if reject := validateTargets(s, sch, in); reject != "" {
			return rejectedFor(schemaID, in.ActorSeat, reject)
		}
	}

	result := resolver.Resolve(schemaID, resolver.Context{State: s, CoinFlip: coinFlip}, toResolverInput(schemaID, in))
	if !result.Valid {
		return rejectedFor(schemaID, in.ActorSeat, result.RejectReason)
	}

	target := in.Target
	actions := []reducer.StateAction{
		reducer.ApplyResolverResult{Updates: result.Updates, Reveal: result.Reveal},
		reducer.RecordProtocolAction{Action: state.ProtocolAction{
			SchemaID:  schemaID,
			ActorSeat: in.ActorSeat,
			Target:    target,
		}},
	}

	if sch.Kind == schema.KindGroupConfirm {
		actions = append(actions, reducer.SetPendingRevealAcks{Keys: groupConfirmKeys(s, schemaID)})
	}

	return accepted(actions...)
}

// actsOnSchema reports whether actorRole is the role the night plan
// assigned to schemaID, accounting for the shared wolfKill meeting, where
// any wolf-vote participant may act, not only the table's nominal role.
func actsOnSchema(actorRole roles.ID, schemaID schema.ID) bool {
	sch, ok := schema.Get(schemaID)
	if !ok {
		return false
	}
	role, ok := roles.Get(actorRole)
	if !ok {
		return false
	}

	if sch.Meeting && role.WolfMeeting != nil {
		switch schemaID {
		case schema.WolfKill:
			return role.WolfMeeting.ParticipatesInWolfVote
		case schema.NightmareBlock:
			return actorRole == roles.Nightmare
		case schema.WolfWitchCheck:
			return actorRole == roles.WolfWitch
		}
	}

	for _, desc := range schemaRoleCandidates(schemaID) {
		if desc == actorRole {
			return true
		}
	}
	return false
}

// schemaRoleCandidates returns every role id the night-step table maps
// to schemaID — usually one, but seerCheck is shared by seer, mirrorSeer
// and drunkSeer.
func schemaRoleCandidates(schemaID schema.ID) []roles.ID {
	var out []roles.ID
	for _, desc := range schema.NightStepTable {
		if desc.SchemaID == schemaID {
			out = append(out, desc.RoleID)
		}
	}
	return out
}

func validateTargets(s *state.GameState, sch schema.ActionSchema, in ActionInput) string {
	teamOf := func(seat int) (roles.Team, bool) {
		roleID, ok := s.RoleAtSeat(seat)
		if !ok {
			return "", false
		}
		r, ok := roles.Get(roleID)
		if !ok {
			return "", false
		}
		return r.Team, true
	}

	targets := in.Targets
	if in.Target != nil {
		targets = append(targets, *in.Target)
	}
	for _, t := range targets {
		if valid, reason := schema.Validate(sch.Constraints, in.ActorSeat, t, teamOf); !valid {
			return reason
		}
	}
	return ""
}

func toResolverInput(schemaID schema.ID, in ActionInput) resolver.Input {
	return resolver.Input{
		SchemaID:          schemaID,
		ActorSeat:         in.ActorSeat,
		Target:            in.Target,
		Targets:           in.Targets,
		Confirm:           in.Confirm,
		Skip:              in.Skip,
		WitchSave:         in.WitchSave,
		WitchPoisonTarget: in.WitchPoisonTarget,
	}
}

func rejectedFor(schemaID schema.ID, actorSeat int, reason string) Result {
	notice := state.RejectionNotice{
		Action:      schemaID,
		Reason:      reason,
		RejectionID: uuid.NewString(),
	}
	return Result{
		Success: false,
		Reason:  reason,
		Actions: []reducer.StateAction{reducer.ActionRejected{Notice: notice}},
		SideEffects: []SideEffect{{Kind: SideEffectBroadcast}},
	}
}

func groupConfirmKeys(s *state.GameState, schemaID schema.ID) []string {
	// piperHypnotizedReveal: one ack key per hypnotized seat.
	var keys []string
	for _, seat := range s.CurrentNightResults.HypnotizedSeats {
		keys = append(keys, ackKeyFor(schemaID, seat))
	}
	return keys
}

func ackKeyFor(schemaID schema.ID, seat int) string {
	return string(schemaID) + ":" + strconv.Itoa(seat)
}
