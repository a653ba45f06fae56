// Package protocol defines the wire-level discriminated unions spec.md
// §6 names: PlayerMessage inbound, HostBroadcast outbound. Both follow
// the teacher's {Type, Payload} envelope (game.WSMessage), generalized
// from one payload type per direction to the full tagged-union set the
// spec requires.
package protocol

import (
	"encoding/json"
	"fmt"

	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// PlayerMessageType discriminates an inbound envelope's payload shape.
type PlayerMessageType string

const (
	RequestState                PlayerMessageType = "REQUEST_STATE"
	SnapshotRequest              PlayerMessageType = "SNAPSHOT_REQUEST"
	Join                        PlayerMessageType = "JOIN"
	Leave                       PlayerMessageType = "LEAVE"
	ViewedRole                  PlayerMessageType = "VIEWED_ROLE"
	Action                      PlayerMessageType = "ACTION"
	WolfVote                    PlayerMessageType = "WOLF_VOTE"
	RevealAck                   PlayerMessageType = "REVEAL_ACK"
	WolfRobotHunterStatusViewed PlayerMessageType = "WOLF_ROBOT_HUNTER_STATUS_VIEWED"

	// Host-only control intents. spec.md §6 enumerates the player-facing
	// tagged union; these four reach the reducer branches §4.6 names
	// (ASSIGN_ROLES, START_NIGHT, UPDATE_TEMPLATE, RESTART_GAME) and the
	// supplemented FILL_WITH_BOTS feature, gated host-only at the handler
	// layer (gateHostOnly), not by transport identity alone.
	AssignRoles   PlayerMessageType = "ASSIGN_ROLES"
	StartNight    PlayerMessageType = "START_NIGHT"
	UpdateTemplate PlayerMessageType = "UPDATE_TEMPLATE"
	FillWithBots  PlayerMessageType = "FILL_WITH_BOTS"
	RestartGame   PlayerMessageType = "RESTART_GAME"
)

// PlayerMessage is the inbound envelope. Payload is decoded lazily via
// DecodePayload once Type is known, matching the teacher's
// json.RawMessage-then-unmarshal-by-tag pattern in handlePlayerAction.
type PlayerMessage struct {
	Type    PlayerMessageType `json:"type"`
	Payload json.RawMessage   `json:"payload"`
}

// RequestStatePayload backs REQUEST_STATE.
type RequestStatePayload struct {
	UID string `json:"uid"`
}

// SnapshotRequestPayload backs SNAPSHOT_REQUEST.
type SnapshotRequestPayload struct {
	RequestID     string `json:"requestId"`
	UID           string `json:"uid"`
	LastRevision  *int   `json:"lastRevision,omitempty"`
}

// JoinPayload backs JOIN.
type JoinPayload struct {
	Seat        int    `json:"seat"`
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// LeavePayload backs LEAVE.
type LeavePayload struct {
	Seat int    `json:"seat"`
	UID  string `json:"uid"`
}

// ViewedRolePayload backs VIEWED_ROLE.
type ViewedRolePayload struct {
	Seat int `json:"seat"`
}

// ActionPayload backs ACTION — the generic night-action envelope. Extra
// carries compound sub-payloads (e.g. witch save/poison), decoded by the
// handler layer once schemaId narrows which fields apply.
type ActionPayload struct {
	Seat   int        `json:"seat"`
	Role   roles.ID   `json:"role"`
	Target *int       `json:"target"`
	Extra  json.RawMessage `json:"extra,omitempty"`
}

// WitchActionExtra is ActionPayload.Extra's shape when Role is witch.
type WitchActionExtra struct {
	Save          bool `json:"save"`
	PoisonTarget  *int `json:"poisonTarget,omitempty"`
}

// MultiTargetExtra is ActionPayload.Extra's shape for magician/gargoyle/
// piper, whose schemas take more than one target.
type MultiTargetExtra struct {
	Targets []int `json:"targets"`
}

// WolfVotePayload backs WOLF_VOTE.
type WolfVotePayload struct {
	Seat   int  `json:"seat"`
	Target *int `json:"target"`
}

// RevealAckPayload backs REVEAL_ACK.
type RevealAckPayload struct {
	Seat     int       `json:"seat"`
	Role     roles.ID  `json:"role"`
	Revision int       `json:"revision"`
}

// WolfRobotHunterStatusViewedPayload backs WOLF_ROBOT_HUNTER_STATUS_VIEWED.
type WolfRobotHunterStatusViewedPayload struct {
	Seat int `json:"seat"`
}

// AssignRolesPayload backs ASSIGN_ROLES. Empty: the host triggers the
// shuffle over whatever templateRoles the room already carries.
type AssignRolesPayload struct{}

// StartNightPayload backs START_NIGHT. Empty: the night always starts
// from the night plan's first step.
type StartNightPayload struct{}

// UpdateTemplatePayload backs UPDATE_TEMPLATE.
type UpdateTemplatePayload struct {
	TemplateRoles []roles.ID `json:"templateRoles"`
}

// FillWithBotsPayload backs FILL_WITH_BOTS.
type FillWithBotsPayload struct {
	DisplayNames []string `json:"displayNames"`
}

// RestartGamePayload backs RESTART_GAME.
type RestartGamePayload struct {
	Nonce string `json:"nonce"`
}

// DecodePayload unmarshals msg.Payload into out, wrapping json errors with
// the message type for easier diagnosis at the transport boundary.
func (msg PlayerMessage) DecodePayload(out interface{}) error {
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("protocol: decoding %s payload: %w", msg.Type, err)
	}
	return nil
}

// HostBroadcastType discriminates an outbound envelope's payload shape.
type HostBroadcastType string

const (
	StateUpdate      HostBroadcastType = "STATE_UPDATE"
	RoleTurn         HostBroadcastType = "ROLE_TURN"
	NightEnd         HostBroadcastType = "NIGHT_END"
	GameRestarted    HostBroadcastType = "GAME_RESTARTED"
	PlayerJoined     HostBroadcastType = "PLAYER_JOINED"
	PlayerLeft       HostBroadcastType = "PLAYER_LEFT"
	SeatRejected     HostBroadcastType = "SEAT_REJECTED"
	SnapshotResponse HostBroadcastType = "SNAPSHOT_RESPONSE"
)

// HostBroadcast is the outbound envelope, mirroring the teacher's
// game.WSMessage{Type, Payload} shape one level up (Payload is an
// interface{} holding the payload value the host builds for Type).
type HostBroadcast struct {
	Type    HostBroadcastType `json:"type"`
	Payload interface{}       `json:"payload"`
}

// StateUpdatePayload backs STATE_UPDATE, the primary broadcast.
type StateUpdatePayload struct {
	State    *state.GameState `json:"state"`
	Revision int              `json:"revision"`
}

// RoleTurnPayload backs ROLE_TURN.
type RoleTurnPayload struct {
	Role        roles.ID   `json:"role"`
	PendingSeats []int     `json:"pendingSeats"`
	KilledSeat  *int       `json:"killedSeat,omitempty"`
	StepID      *schema.ID `json:"stepId,omitempty"`
}

// NightEndPayload backs NIGHT_END.
type NightEndPayload struct {
	Deaths []int `json:"deaths"`
}

// PlayerJoinedPayload backs PLAYER_JOINED.
type PlayerJoinedPayload struct {
	Seat   int           `json:"seat"`
	Player *state.Player `json:"player"`
}

// PlayerLeftPayload backs PLAYER_LEFT.
type PlayerLeftPayload struct {
	Seat int `json:"seat"`
}

// SeatRejectedPayload backs SEAT_REJECTED.
type SeatRejectedPayload struct {
	Seat       int    `json:"seat"`
	RequestUID string `json:"requestUid"`
	Reason     string `json:"reason"`
}

// SnapshotResponsePayload backs SNAPSHOT_RESPONSE — a point-to-point
// reply, not a room-wide fan-out.
type SnapshotResponsePayload struct {
	RequestID string           `json:"requestId"`
	ToUID     string           `json:"toUid"`
	State     *state.GameState `json:"state"`
	Revision  int              `json:"revision"`
}

// Transport-level rejection reasons spec.md §6 lists alongside the
// business taxonomy (engine/handler carries the business reasons).
const (
	ReasonTimeout   = "timeout"
	ReasonCancelled = "cancelled"
)
