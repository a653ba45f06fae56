package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveGuardProtect_RecordsGuardedSeat(t *testing.T) {
	res := ResolveGuardProtect(Context{}, Input{ActorSeat: 0, Target: intPtr(3)})
	assert.True(t, res.Valid)
	assert.Equal(t, 3, *res.Updates.GuardedSeat)
}

func TestResolveGuardProtect_SkipIsValidNoop(t *testing.T) {
	res := ResolveGuardProtect(Context{}, Input{ActorSeat: 0, Skip: true})
	assert.True(t, res.Valid)
	assert.Nil(t, res.Updates.GuardedSeat)
}

func TestResolveGuardProtect_NoTargetIsValidNoop(t *testing.T) {
	res := ResolveGuardProtect(Context{}, Input{ActorSeat: 0})
	assert.True(t, res.Valid)
	assert.Nil(t, res.Updates.GuardedSeat)
}
