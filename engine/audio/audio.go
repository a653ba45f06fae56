// Package audio resolves night-step audio keys into the queue the host
// device consumes, including the seer-family label rewrite spec.md §6
// describes.
package audio

import (
	"fmt"

	"nightwatch/engine/nightplan"
	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// ResolveSeerAudioKey rewrites a step's audio key when the step's role is
// seer-family and a seerLabelMap is present: audioKey becomes
// "seer_<label>" so labeled seers play labeled files. Every other step's
// key passes through unchanged.
func ResolveSeerAudioKey(step nightplan.Step, seerLabelMap map[roles.ID]int) string {
	if seerLabelMap == nil {
		return step.AudioKey
	}
	label, ok := seerLabelMap[step.RoleID]
	if !ok {
		return step.AudioKey
	}
	return fmt.Sprintf("seer_%d", label)
}

// ResolveSeerAudioEndKey is the end-audio equivalent of
// ResolveSeerAudioKey.
func ResolveSeerAudioEndKey(step nightplan.Step, seerLabelMap map[roles.ID]int) string {
	if seerLabelMap == nil {
		return step.AudioEnd
	}
	if _, ok := seerLabelMap[step.RoleID]; !ok {
		return step.AudioEnd
	}
	return ResolveSeerAudioKey(step, seerLabelMap) + "_end"
}

// EndEffect and StartEffect build the AudioEffect pair the progression
// driver appends when transitioning out of one step into the next.
func EndEffect(step nightplan.Step, seerLabelMap map[roles.ID]int) state.AudioEffect {
	return state.AudioEffect{AudioKey: ResolveSeerAudioKey(step, seerLabelMap), IsEndAudio: true}
}

func StartEffect(step nightplan.Step, seerLabelMap map[roles.ID]int) state.AudioEffect {
	return state.AudioEffect{AudioKey: ResolveSeerAudioKey(step, seerLabelMap)}
}
