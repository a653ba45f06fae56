package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerMessage_TypeDeterminesPayloadShape(t *testing.T) {
	raw := []byte(`{"type":"JOIN","payload":{"seat":2,"uid":"u1","displayName":"Ann"}}`)
	var msg PlayerMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, Join, msg.Type)

	var payload JoinPayload
	require.NoError(t, msg.DecodePayload(&payload))
	assert.Equal(t, 2, payload.Seat)
	assert.Equal(t, "u1", payload.UID)
	assert.Equal(t, "Ann", payload.DisplayName)
}

func TestPlayerMessage_DecodePayloadWrapsErrorWithType(t *testing.T) {
	msg := PlayerMessage{Type: WolfVote, Payload: json.RawMessage(`{"seat": "not-a-number"}`)}
	var payload WolfVotePayload
	err := msg.DecodePayload(&payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(WolfVote))
}

func TestActionPayload_ExtraIsDecodedOnceRoleIsKnown(t *testing.T) {
	raw := []byte(`{"type":"ACTION","payload":{"seat":3,"role":"witch","target":null,"extra":{"save":true}}}`)
	var msg PlayerMessage
	require.NoError(t, json.Unmarshal(raw, &msg))

	var action ActionPayload
	require.NoError(t, msg.DecodePayload(&action))
	assert.Nil(t, action.Target)

	var extra WitchActionExtra
	require.NoError(t, json.Unmarshal(action.Extra, &extra))
	assert.True(t, extra.Save)
	assert.Nil(t, extra.PoisonTarget)
}

func TestActionPayload_MultiTargetExtraDecodesTargetList(t *testing.T) {
	action := ActionPayload{Seat: 1, Extra: json.RawMessage(`{"targets":[2,5]}`)}
	var extra MultiTargetExtra
	require.NoError(t, json.Unmarshal(action.Extra, &extra))
	assert.Equal(t, []int{2, 5}, extra.Targets)
}

func TestHostBroadcast_PayloadRoundTripsThroughInterface(t *testing.T) {
	out := HostBroadcast{
		Type:    SeatRejected,
		Payload: SeatRejectedPayload{Seat: 4, RequestUID: "u9", Reason: "seat_taken"},
	}
	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded struct {
		Type    HostBroadcastType      `json:"type"`
		Payload SeatRejectedPayload    `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, SeatRejected, decoded.Type)
	assert.Equal(t, 4, decoded.Payload.Seat)
	assert.Equal(t, "seat_taken", decoded.Payload.Reason)
}
