// Package handler implements per-intent gate checks and resolver
// dispatch (spec.md §4.7, L3). Handlers never mutate state directly:
// they produce {actions[], sideEffects[]} for the caller to apply
// through engine/reducer and then broadcast/persist.
package handler

import (
	"nightwatch/engine/reducer"
)

// SideEffectKind discriminates the side effects a handler can request.
type SideEffectKind string

const (
	SideEffectBroadcast SideEffectKind = "broadcast"
	SideEffectSave      SideEffectKind = "save"
	SideEffectPlayAudio SideEffectKind = "play_audio"
)

// SideEffect is one action the transport/host shell must perform after a
// handler's StateActions are reduced; handlers describe these, they
// never perform them (no I/O in engine/handler).
type SideEffect struct {
	Kind     SideEffectKind
	AudioKey string
	IsEnd    bool
}

// Result is a handler's complete, pure output: zero or more reducer
// actions to apply in order, plus side effects to perform once they are.
// A rejected intent has Success=false and Actions containing at most one
// reducer.ActionRejected.
type Result struct {
	Success     bool
	Reason      string
	Actions     []reducer.StateAction
	SideEffects []SideEffect
}

func rejected(reason string) Result {
	return Result{Success: false, Reason: reason}
}

func accepted(actions ...reducer.StateAction) Result {
	return Result{
		Success:     true,
		Actions:     actions,
		SideEffects: []SideEffect{{Kind: SideEffectBroadcast}, {Kind: SideEffectSave}},
	}
}
