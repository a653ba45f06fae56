package handler

import (
	"nightwatch/engine/reducer"
	"nightwatch/engine/resolver"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
	"nightwatch/engine/votes"
)

// HandleWolfVote is the dedicated path for the WOLF_VOTE intent
// (spec.md §4.5, §6). It dispatches to the same wolfKill resolver as a
// generic ACTION would, then layers the countdown-deadline transition
// described in §4.5 and tested in §8: allVoted && no deadline => set;
// allVoted && has deadline => reset; !allVoted && has deadline => clear.
func HandleWolfVote(s *state.GameState, actorSeat int, target *int, retract bool) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejectedFor(schema.WolfKill, actorSeat, reason)
	}
	if ok, reason := gateStatus(s, state.Ongoing); !ok {
		return rejectedFor(schema.WolfKill, actorSeat, reason)
	}
	if ok, reason := gateNotAudioPlaying(s); !ok {
		return rejectedFor(schema.WolfKill, actorSeat, reason)
	}
	if s.CurrentStepID == nil || *s.CurrentStepID != schema.WolfKill {
		return rejectedFor(schema.WolfKill, actorSeat, ReasonInvalidStep)
	}

	in := resolver.Input{SchemaID: schema.WolfKill, ActorSeat: actorSeat, Target: target, Skip: retract}
	result := resolver.Resolve(schema.WolfKill, resolver.Context{State: s}, in)
	if !result.Valid {
		return rejectedFor(schema.WolfKill, actorSeat, result.RejectReason)
	}

	actions := []reducer.StateAction{
		reducer.ApplyResolverResult{Updates: result.Updates},
	}

	nextVotes := mergedVotes(s.CurrentNightResults.WolfVotesBySeat, result.Updates.WolfVote)
	allVoted := votes.AllVoted(s.Players, nextVotes)
	hasDeadline := s.WolfVoteDeadline != nil

	switch votes.DecideDeadline(allVoted, hasDeadline) {
	case votes.DeadlineSet:
		deadline := deadlineProvider() + votes.WolfVoteCountdownMS
		actions = append(actions, reducer.SetWolfVoteDeadline{Deadline: &deadline})
	case votes.DeadlineClear:
		actions = append(actions, reducer.SetWolfVoteDeadline{Deadline: nil})
	}

	return accepted(actions...)
}

func mergedVotes(existing map[int]int, update *resolver.WolfVoteUpdate) map[int]int {
	out := make(map[int]int, len(existing)+1)
	for k, v := range existing {
		out[k] = v
	}
	if update != nil {
		out[update.Seat] = update.Target
	}
	return out
}

// deadlineProvider is overridable by tests; production wiring supplies
// the current epoch-ms clock at the transport boundary (the engine
// itself never reads the wall clock per spec.md §5, so this var is the
// one seam through which "now" enters a handler).
var deadlineProvider = func() int64 { return 0 }

// SetClock lets the host shell install the real wall clock at startup.
func SetClock(now func() int64) {
	deadlineProvider = now
}
