package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDarkWolfKingConfirm_AlwaysValid(t *testing.T) {
	assert.True(t, ResolveDarkWolfKingConfirm(Context{}, Input{ActorSeat: 0}).Valid)
}

func TestResolveHunterConfirm_AlwaysValid(t *testing.T) {
	assert.True(t, ResolveHunterConfirm(Context{}, Input{ActorSeat: 0}).Valid)
}
