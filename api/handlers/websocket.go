package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"nightwatch/engine/handler"
	"nightwatch/engine/progression"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
	"nightwatch/game"
	"nightwatch/pkg/logger"
	"nightwatch/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // development: no separate API origin to pin
	},
}

// Clock is overridable for tests; production wiring installs the real
// wall clock in cmd/server/main.go (handler/progression never read time
// themselves — this is the one seam at the transport boundary).
var Clock = func() int64 { return 0 }

// HandleGameWebSocket upgrades the connection, registers it under
// roomCode/uid, and loops reading protocol.PlayerMessage envelopes until
// the socket closes. Adapted from the teacher's HandleGameWebSocket —
// same upgrade/defer/ReadJSON-loop shape — dispatching into the new
// discriminated-union protocol instead of game.WSMessage/PlayerAction.
func HandleGameWebSocket(w http.ResponseWriter, r *http.Request, rt *game.Router) {
	log := logger.GetLogger()

	roomCode := mux.Vars(r)["code"]
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		log.Error("websocket: no uid provided for room %s", roomCode)
		http.Error(w, "uid is required", http.StatusBadRequest)
		return
	}

	sess, exists := rt.GetRoom(roomCode)
	if !exists {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("websocket: upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	defer sess.RemoveConnection(uid, conn)

	sess.RegisterConnection(uid, conn)
	sendStateSnapshot(sess, uid, conn)

	for {
		var msg protocol.PlayerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error("websocket: read error in room %s: %v", roomCode, err)
			}
			break
		}
		log.Debug("websocket: room %s received %s from %s", roomCode, msg.Type, uid)
		dispatch(sess, uid, msg)
	}
}

func sendStateSnapshot(sess *game.Session, uid string, conn *websocket.Conn) {
	s, revision := sess.Store.Snapshot()
	conn.WriteJSON(protocol.HostBroadcast{
		Type: protocol.StateUpdate,
		Payload: protocol.StateUpdatePayload{State: s, Revision: revision},
	})
}

// dispatch demultiplexes one PlayerMessage into the matching
// engine/handler call, applies its Actions through sess.Reduce, drives
// engine/progression when the intent could have advanced the night, and
// broadcasts/replies per the handler's SideEffects.
func dispatch(sess *game.Session, uid string, msg protocol.PlayerMessage) {
	s, _ := sess.Store.Snapshot()
	if s == nil {
		return
	}

	switch msg.Type {
	case protocol.RequestState:
		cur, revision := sess.Store.Snapshot()
		sess.SendTo(uid, protocol.HostBroadcast{
			Type:    protocol.StateUpdate,
			Payload: protocol.StateUpdatePayload{State: cur, Revision: revision},
		})

	case protocol.SnapshotRequest:
		var p protocol.SnapshotRequestPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		cur, revision := sess.Store.Snapshot()
		sess.SendTo(uid, protocol.HostBroadcast{
			Type: protocol.SnapshotResponse,
			Payload: protocol.SnapshotResponsePayload{
				RequestID: p.RequestID, ToUID: p.UID, State: cur, Revision: revision,
			},
		})

	case protocol.Join:
		var p protocol.JoinPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		apply(sess, uid, p.Seat, handler.HandleJoin(s, p.Seat, p.UID, p.DisplayName, p.AvatarURL, false))

	case protocol.Leave:
		var p protocol.LeavePayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		apply(sess, uid, p.Seat, handler.HandleLeave(s, p.Seat))

	case protocol.ViewedRole:
		var p protocol.ViewedRolePayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		apply(sess, uid, p.Seat, handler.HandlePlayerViewedRole(s, p.Seat))

	case protocol.Action:
		var p protocol.ActionPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		in := actionInputFrom(p)
		schemaID := schemaForRole(p.Role)
		apply(sess, uid, p.Seat, handler.HandleAction(s, schemaID, in, handler.SecureCoinFlip))

	case protocol.WolfVote:
		var p protocol.WolfVotePayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		apply(sess, uid, p.Seat, handler.HandleWolfVote(s, p.Seat, p.Target, p.Target == nil))

	case protocol.RevealAck:
		var p protocol.RevealAckPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		apply(sess, uid, p.Seat, handler.HandleRevealAck(s, p.Seat, schemaForRole(p.Role)))

	case protocol.WolfRobotHunterStatusViewed:
		var p protocol.WolfRobotHunterStatusViewedPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		if !seatOwnedBy(s, p.Seat, uid) {
			rejectSeat(sess, p.Seat, uid, handler.ReasonInvalidSeat)
			return
		}
		apply(sess, uid, p.Seat, handler.HandleWolfRobotHunterStatusViewed(s, p.Seat))

	case protocol.AssignRoles:
		apply(sess, uid, -1, handler.HandleAssignRoles(s, uid))

	case protocol.StartNight:
		apply(sess, uid, -1, handler.HandleStartNight(s, uid))

	case protocol.UpdateTemplate:
		var p protocol.UpdateTemplatePayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		apply(sess, uid, -1, handler.HandleUpdateTemplate(s, uid, p.TemplateRoles))

	case protocol.FillWithBots:
		var p protocol.FillWithBotsPayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		apply(sess, uid, -1, handler.HandleFillWithBots(s, uid, p.DisplayNames))

	case protocol.RestartGame:
		var p protocol.RestartGamePayload
		if err := msg.DecodePayload(&p); err != nil {
			return
		}
		apply(sess, uid, -1, handler.HandleRestartGame(s, uid, p.Nonce))

	default:
		logger.GetLogger().Warn("websocket: unknown message type %s", msg.Type)
	}
}

// apply commits a handler.Result's Actions, runs the progression driver
// (a no-op if the game isn't Ongoing or nothing is due), and broadcasts
// the settled state — or, on rejection, broadcasts the ActionRejected
// notice the handler already produced.
func apply(sess *game.Session, uid string, seat int, result handler.Result) {
	if len(result.Actions) == 0 {
		if !result.Success {
			rejectSeat(sess, seat, uid, result.Reason)
		}
		return
	}

	cur, _ := sess.Store.Snapshot()
	for _, a := range result.Actions {
		cur = sess.Reduce(cur, a)
	}

	progression.Run(cur, cur.HostUID, Clock(), sess.Reduce)

	s, revision := sess.Store.Snapshot()
	sess.Broadcast(protocol.HostBroadcast{
		Type:    protocol.StateUpdate,
		Payload: protocol.StateUpdatePayload{State: s, Revision: revision},
	})
}

func rejectSeat(sess *game.Session, seat int, uid, reason string) {
	sess.SendTo(uid, protocol.HostBroadcast{
		Type: protocol.SeatRejected,
		Payload: protocol.SeatRejectedPayload{Seat: seat, RequestUID: uid, Reason: reason},
	})
}

func seatOwnedBy(s *state.GameState, seat int, uid string) bool {
	if seat < 0 || seat >= len(s.Players) || s.Players[seat] == nil {
		return false
	}
	return s.Players[seat].UID == uid
}

func actionInputFrom(p protocol.ActionPayload) handler.ActionInput {
	in := handler.ActionInput{ActorSeat: p.Seat, Target: p.Target}
	if p.Target == nil && len(p.Extra) == 0 {
		in.Skip = true
	}

	switch p.Role {
	case roles.Witch:
		var extra protocol.WitchActionExtra
		if msgErr := jsonDecodeExtra(p.Extra, &extra); msgErr == nil {
			in.WitchSave = extra.Save
			in.WitchPoisonTarget = extra.PoisonTarget
			in.Skip = false
		}
	case roles.Magician, roles.Gargoyle, roles.Piper:
		var extra protocol.MultiTargetExtra
		if msgErr := jsonDecodeExtra(p.Extra, &extra); msgErr == nil {
			in.Targets = extra.Targets
			in.Skip = false
		}
	case roles.Hunter, roles.DarkWolfKing:
		in.Confirm = true
		in.Skip = false
	}
	return in
}

var errEmptyExtra = errors.New("protocol: empty extra payload")

func jsonDecodeExtra(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return errEmptyExtra
	}
	return json.Unmarshal(raw, out)
}

// schemaForRole maps a role to the night schema the client's ACTION
// message is claiming to submit for. Most roles have exactly one; the
// seer family shares seerCheck and is disambiguated by actual role.
func schemaForRole(role roles.ID) schema.ID {
	for _, desc := range schema.NightStepTable {
		if desc.RoleID == role {
			return desc.SchemaID
		}
	}
	return ""
}
