package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWolfQueenLink_RecordsCharmedSeat(t *testing.T) {
	res := ResolveWolfQueenLink(Context{}, Input{ActorSeat: 0, Target: intPtr(6)})
	assert.True(t, res.Valid)
	assert.Equal(t, 6, *res.Updates.CharmedSeat)
}

func TestResolveWolfQueenLink_SkipIsValidNoop(t *testing.T) {
	res := ResolveWolfQueenLink(Context{}, Input{ActorSeat: 0, Skip: true})
	assert.True(t, res.Valid)
	assert.Nil(t, res.Updates.CharmedSeat)
}
