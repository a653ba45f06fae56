// Package progression implements the Inline Progression Driver
// (spec.md §4.9): after each accepted intent, it loops
// evaluate -> advance/endNight -> reduce until no further step is due,
// bounded by MaxLoops as a safety net against resolver/handler bugs.
package progression

import (
	"nightwatch/engine/handler"
	"nightwatch/engine/reducer"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
	"nightwatch/engine/votes"
	"nightwatch/pkg/logger"
)

// MaxLoops bounds one progression run (spec.md §4.9). A var, not a
// const, so internal/config can override it from MAX_PROGRESSION_LOOPS.
var MaxLoops = 20

// Decision is evaluate's verdict for the current state.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionAdvance
	DecisionEndNight
)

// Evaluate implements spec.md §4.9's exact rule: none if status isn't
// Ongoing, audio is playing, reveals are pending ack, or the current step
// isn't complete yet (including, for wolfKill, now < wolfVoteDeadline);
// endNight if currentStepId is unset; advance otherwise.
func Evaluate(s *state.GameState, nowMS int64) Decision {
	if s.Status != state.Ongoing {
		return DecisionNone
	}
	if s.IsAudioPlaying {
		return DecisionNone
	}
	if len(s.PendingRevealAcks) > 0 {
		return DecisionNone
	}
	if s.CurrentStepID == nil {
		return DecisionEndNight
	}
	if !stepComplete(s, *s.CurrentStepID, nowMS) {
		return DecisionNone
	}
	return DecisionAdvance
}

// stepComplete implements spec.md §4.9's per-step completion rule: an
// accepted action carrying schemaID exists in state.actions, or — for
// wolfKill only — the countdown deadline has elapsed once one is set, or,
// while no deadline is set, every participant has voted.
func stepComplete(s *state.GameState, schemaID schema.ID, nowMS int64) bool {
	if schemaID == schema.WolfKill {
		if s.WolfVoteDeadline != nil {
			return nowMS >= *s.WolfVoteDeadline
		}
		return votes.AllVoted(s.Players, s.CurrentNightResults.WolfVotesBySeat)
	}

	for _, a := range s.Actions {
		if a.SchemaID == schemaID {
			return true
		}
	}
	return false
}

// Run drives the loop described in spec.md §4.9, starting from an
// already-reduced state (the caller has applied the triggering intent's
// own actions first). reduce applies one reducer.StateAction and returns
// the resulting state; it is injected so this package never imports a
// concrete store. requestUID identifies the host session driving
// progression (handler.HandleAdvanceNight/HandleEndNight are host-only).
func Run(s *state.GameState, requestUID string, nowMS int64, reduce func(*state.GameState, reducer.StateAction) *state.GameState) *state.GameState {
	cur := s
	var pendingAudio []state.AudioEffect

	for i := 0; i < MaxLoops; i++ {
		switch Evaluate(cur, nowMS) {
		case DecisionNone:
			return flushAudio(cur, pendingAudio, reduce)
		case DecisionAdvance:
			result := handler.HandleAdvanceNight(cur, requestUID)
			if !result.Success {
				return flushAudio(cur, pendingAudio, reduce)
			}
			for _, a := range result.Actions {
				cur = reduce(cur, a)
			}
			pendingAudio = append(pendingAudio, collectAudio(result)...)
		case DecisionEndNight:
			result := handler.HandleEndNight(cur, requestUID)
			if !result.Success {
				return flushAudio(cur, pendingAudio, reduce)
			}
			for _, a := range result.Actions {
				cur = reduce(cur, a)
			}
			return flushAudio(cur, pendingAudio, reduce)
		}
	}

	logger.GetLogger().Warn("progression: hit MaxLoops (%d) without settling, room=%s", MaxLoops, cur.RoomCode)
	return flushAudio(cur, pendingAudio, reduce)
}

func collectAudio(r handler.Result) []state.AudioEffect {
	var out []state.AudioEffect
	for _, se := range r.SideEffects {
		if se.Kind == handler.SideEffectPlayAudio {
			out = append(out, state.AudioEffect{AudioKey: se.AudioKey, IsEndAudio: se.IsEnd})
		}
	}
	return out
}

// flushAudio installs the accumulated audio queue with a final
// SET_PENDING_AUDIO_EFFECTS + SET_AUDIO_PLAYING(true), per spec.md §4.9;
// the host device later posts an ack clearing both.
func flushAudio(s *state.GameState, effects []state.AudioEffect, reduce func(*state.GameState, reducer.StateAction) *state.GameState) *state.GameState {
	if len(effects) == 0 {
		return s
	}
	s = reduce(s, reducer.SetPendingAudioEffects{Effects: effects})
	s = reduce(s, reducer.SetAudioPlaying{Playing: true})
	return s
}
