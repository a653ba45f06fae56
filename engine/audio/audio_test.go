package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nightwatch/engine/nightplan"
	"nightwatch/engine/roles"
)

func TestResolveSeerAudioKey_PassesThroughWithoutLabelMap(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Seer, AudioKey: "seer"}
	assert.Equal(t, "seer", ResolveSeerAudioKey(step, nil))
}

func TestResolveSeerAudioKey_RewritesLabeledRole(t *testing.T) {
	step := nightplan.Step{RoleID: roles.MirrorSeer, AudioKey: "mirrorSeer"}
	labels := map[roles.ID]int{roles.MirrorSeer: 2}
	assert.Equal(t, "seer_2", ResolveSeerAudioKey(step, labels))
}

func TestResolveSeerAudioKey_PassesThroughForUnlabeledRole(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Guard, AudioKey: "guard"}
	labels := map[roles.ID]int{roles.Seer: 1}
	assert.Equal(t, "guard", ResolveSeerAudioKey(step, labels))
}

func TestResolveSeerAudioEndKey_RewritesLabeledRole(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Seer, AudioKey: "seer", AudioEnd: "seer_end"}
	labels := map[roles.ID]int{roles.Seer: 1}
	assert.Equal(t, "seer_1_end", ResolveSeerAudioEndKey(step, labels))
}

func TestResolveSeerAudioEndKey_PassesThroughWithoutLabelMap(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Seer, AudioEnd: "seer_end"}
	assert.Equal(t, "seer_end", ResolveSeerAudioEndKey(step, nil))
}

func TestStartEffect_IsNotMarkedAsEndAudio(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Guard, AudioKey: "guard"}
	eff := StartEffect(step, nil)
	assert.Equal(t, "guard", eff.AudioKey)
	assert.False(t, eff.IsEndAudio)
}

func TestEndEffect_IsMarkedAsEndAudio(t *testing.T) {
	step := nightplan.Step{RoleID: roles.Guard, AudioKey: "guard"}
	eff := EndEffect(step, nil)
	assert.True(t, eff.IsEndAudio)
}
