package handler

import (
	"nightwatch/engine/audio"
	"nightwatch/engine/death"
	"nightwatch/engine/nightplan"
	"nightwatch/engine/reducer"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
	"nightwatch/engine/votes"
)

// HandleAdvanceNight implements ADVANCE_TO_NEXT_ACTION (spec.md §4.7): it
// rebuilds the night plan from templateRoles/seerLabelMap (the engine
// never persists the plan itself, only the index into it), computes the
// witch/confirm contexts the next step needs, and emits the
// audio-end/audio-start pair for the transition. It emits no SetUIHint
// action, so the UI actor hint is left as it was. Reaching past the last
// step sets NextStepID nil; the caller is then expected to invoke
// HandleEndNight.
func HandleAdvanceNight(s *state.GameState, requestUID string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if ok, reason := gateStatus(s, state.Ongoing); !ok {
		return rejected(reason)
	}
	if ok, reason := gateNotAudioPlaying(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateWolfRobotHunterAck(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateWolfVoteSettled(s); !ok {
		return rejected(reason)
	}

	plan, err := nightplan.Build(s.TemplateRoles, s.SeerLabelMap)
	if err != nil {
		return rejected(ReasonInvalidAction)
	}

	nextIndex := s.CurrentStepIndex + 1
	var actions []reducer.StateAction

	// Audio effects are only collected here, not installed: the
	// progression driver (engine/progression) accumulates every step's
	// effects across the whole loop and installs them once at the end
	// with a single SET_PENDING_AUDIO_EFFECTS + SET_AUDIO_PLAYING(true),
	// per spec.md §4.9.
	var audioEffects []state.AudioEffect
	if s.CurrentStepIndex >= 0 && s.CurrentStepIndex < len(plan.Steps) {
		audioEffects = append(audioEffects, audio.EndEffect(plan.Steps[s.CurrentStepIndex], s.SeerLabelMap))
	}

	if nextIndex >= len(plan.Steps) {
		actions = append(actions, reducer.AdvanceToNextAction{NextStepIndex: nextIndex, NextStepID: nil})
		return Result{
			Success:     true,
			Actions:     actions,
			SideEffects: append(effectsFor(audioEffects), SideEffect{Kind: SideEffectBroadcast}, SideEffect{Kind: SideEffectSave}),
		}
	}

	next := plan.Steps[nextIndex]
	audioEffects = append(audioEffects, audio.StartEffect(next, s.SeerLabelMap))

	actions = append(actions, reducer.AdvanceToNextAction{NextStepIndex: nextIndex, NextStepID: &next.SchemaID})
	actions = append(actions, contextActionsForStep(s, next)...)

	return Result{
		Success:     true,
		Actions:     actions,
		SideEffects: append(effectsFor(audioEffects), SideEffect{Kind: SideEffectBroadcast}, SideEffect{Kind: SideEffectSave}),
	}
}

// gateWolfVoteSettled refuses to advance out of wolfKill while wolves are
// still voting: the step is settled only once every participant has
// voted. The countdown deadline is not consulted here.
func gateWolfVoteSettled(s *state.GameState) (ok bool, reason string) {
	if s.CurrentStepID == nil || *s.CurrentStepID != schema.WolfKill {
		return true, ""
	}
	if votes.AllVoted(s.Players, s.CurrentNightResults.WolfVotesBySeat) {
		return true, ""
	}
	return false, ReasonNightNotComplete
}

func contextActionsForStep(s *state.GameState, step nightplan.Step) []reducer.StateAction {
	var actions []reducer.StateAction

	switch step.SchemaID {
	case schema.WitchAction:
		target, hasKill := votes.ResolveKillTarget(s.CurrentNightResults.WolfVotesBySeat)
		actions = append(actions, reducer.SetWitchContext{Context: state.WitchContext{
			WolfKillSeat: target,
			CanSave:      hasKill,
			CanPoison:    true,
		}})
	case schema.HunterConfirm:
		actions = append(actions, reducer.SetConfirmStatus{Context: state.ConfirmStatus{
			CanShoot: !s.WolfKillDisabled || (s.NightmareBlockedSeat == nil),
		}})
	case schema.DarkWolfKingConfirm:
		actions = append(actions, reducer.SetConfirmStatus{Context: state.ConfirmStatus{CanShoot: true}})
	}

	return actions
}

func effectsFor(effects []state.AudioEffect) []SideEffect {
	out := make([]SideEffect, 0, len(effects))
	for _, e := range effects {
		out = append(out, SideEffect{Kind: SideEffectPlayAudio, AudioKey: e.AudioKey, IsEnd: e.IsEndAudio})
	}
	return out
}

// HandleEndNight implements END_NIGHT (spec.md §4.8): builds NightActions
// from the accumulated currentNightResults, runs the death calculator,
// and finalizes the night. Only reachable once ADVANCE_TO_NEXT_ACTION has
// walked past the plan's last step (CurrentStepID nil).
func HandleEndNight(s *state.GameState, requestUID string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if ok, reason := gateStatus(s, state.Ongoing); !ok {
		return rejected(reason)
	}
	if s.CurrentStepID != nil {
		return rejected(ReasonNightNotComplete)
	}

	nr := s.CurrentNightResults
	rsm := death.BuildRoleSeatMap(s.Players, nr.SwappedSeats)

	killTarget, hasKill := votes.ResolveKillTarget(nr.WolfVotesBySeat)

	var guardSeat, witchSeat *int
	if seat, ok := rsm.EffectiveSeatOfRole[roles.Guard]; ok {
		guardSeat = &seat
	}
	if seat, ok := rsm.EffectiveSeatOfRole[roles.Witch]; ok {
		witchSeat = &seat
	}

	na := death.NightActions{
		WolfKillTarget:           killTarget,
		HasWolfKill:              hasKill,
		IsWolfBlockedByNightmare: s.WolfKillDisabled,
		GuardedSeat:              nr.GuardedSeat,
		WitchSavedSeat:           nr.SavedSeat,
		WitchPoisonedSeat:        nr.PoisonedSeat,
		IsWitchBlocked:           s.NightmareBlockedSeat != nil && witchSeat != nil && *s.NightmareBlockedSeat == *witchSeat,
		GuardSeat:                guardSeat,
		WitchSeat:                witchSeat,
		NightmareBlockedSeat:     s.NightmareBlockedSeat,
		SeerCheckedSeat:          seerCheckedSeat(s),
		MagicianSwap:             nr.SwappedSeats,
		CharmedSeat:              nr.CharmedSeat,
		DreamTargetSeat:          nr.DreamcatcherSeat,
	}

	deaths := death.Calculate(na, rsm)

	return accepted(reducer.EndNight{Deaths: deaths})
}

// seerCheckedSeat recovers the seat the plain seer (not mirrorSeer or
// drunkSeer) checked, for the reflectsDamage rule — the only death rule
// that cares which seat a seer-family check landed on.
func seerCheckedSeat(s *state.GameState) *int {
	if s.SeerReveal == nil {
		return nil
	}
	for _, a := range s.Actions {
		if a.SchemaID == schema.SeerCheck && a.Target != nil {
			if roleID, ok := s.RoleAtSeat(a.ActorSeat); ok && roleID == roles.Seer {
				t := *a.Target
				return &t
			}
		}
	}
	return nil
}
