// Package game adapts the teacher's GameManager (one mutex-guarded map
// of rooms plus a websocket connection registry) into a Router over
// engine/store.Store rooms: the engine packages hold all rules, this
// package only owns room lookup, connection bookkeeping and broadcast
// fan-out.
package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"nightwatch/engine/reducer"
	"nightwatch/engine/state"
	"nightwatch/engine/store"
	"nightwatch/pkg/logger"
	"nightwatch/protocol"
)

// Session pairs one room's authoritative Store with its connected
// websocket clients, keyed by uid (spec.md's player identity, not
// connection identity — a reconnecting uid replaces its prior conn).
type Session struct {
	Code  string
	Store *store.Store

	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

func newSession(code, hostUID string) *Session {
	s := &Session{
		Code:        code,
		Store:       store.New(),
		connections: make(map[string]*websocket.Conn),
	}
	s.Store.Initialize(&state.GameState{
		RoomCode: code,
		HostUID:  hostUID,
		Status:   state.Unseated,
		Players:  make([]*state.Player, 0),
	})
	return s
}

// Reduce applies one reducer.StateAction and commits the result as the
// new authoritative state, matching the signature engine/progression.Run
// expects to be injected with.
func (s *Session) Reduce(cur *state.GameState, action reducer.StateAction) *state.GameState {
	next := reducer.Reduce(cur, action)
	s.Store.SetState(next)
	return next
}

// RegisterConnection associates uid with conn, replacing any prior
// connection for that uid (a reconnect).
func (s *Session) RegisterConnection(uid string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, exists := s.connections[uid]; exists && old != conn {
		old.Close()
	}
	s.connections[uid] = conn
}

// RemoveConnection drops uid's connection iff it still matches conn
// (avoids a stale close racing a fresher reconnect).
func (s *Session) RemoveConnection(uid string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, exists := s.connections[uid]; exists && cur == conn {
		delete(s.connections, uid)
	}
}

// Broadcast fans msg out to every connected uid.
func (s *Session) Broadcast(msg protocol.HostBroadcast) {
	log := logger.GetLogger()
	s.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(s.connections))
	for uid, c := range s.connections {
		conns[uid] = c
	}
	s.mu.RUnlock()

	for uid, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn("session %s: broadcast to %s failed: %v", s.Code, uid, err)
		}
	}
}

// SendTo delivers msg to a single uid only (used for SNAPSHOT_RESPONSE
// and SEAT_REJECTED, which are point-to-point per spec.md §6).
func (s *Session) SendTo(uid string, msg protocol.HostBroadcast) {
	s.mu.RLock()
	conn, exists := s.connections[uid]
	s.mu.RUnlock()
	if !exists {
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		logger.GetLogger().Warn("session %s: send to %s failed: %v", s.Code, uid, err)
	}
}

// Router is the multi-room registry, generalized from the teacher's
// GameManager: one Session per room code instead of one *Game.
type Router struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{sessions: make(map[string]*Session)}
}

func generateRoomCode() string {
	return fmt.Sprintf("%06X", uuid.New().ID())
}

// CreateRoom allocates a fresh room seated by hostUID and registers it.
func (rt *Router) CreateRoom(hostUID string) *Session {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	code := generateRoomCode()
	for _, exists := rt.sessions[code]; exists; _, exists = rt.sessions[code] {
		code = generateRoomCode()
	}
	sess := newSession(code, hostUID)
	rt.sessions[code] = sess
	logger.GetLogger().Info("router: created room %s for host %s", code, hostUID)
	return sess
}

// GetRoom looks up a session by room code.
func (rt *Router) GetRoom(code string) (*Session, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	sess, exists := rt.sessions[code]
	return sess, exists
}

// RemoveRoom tears a room down entirely, unlike RESTART_GAME's in-place
// reset.
func (rt *Router) RemoveRoom(code string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if sess, exists := rt.sessions[code]; exists {
		sess.Store.Destroy()
		delete(rt.sessions, code)
	}
}

// RoomSummary is the public listing shape (spec.md's supplemented
// "room listing" feature).
type RoomSummary struct {
	Code        string       `json:"code"`
	Status      state.Status `json:"status"`
	PlayerCount int          `json:"playerCount"`
}

// ListRooms returns a summary of every room still in Unseated or Seated
// status — the only statuses a new player could usefully join.
func (rt *Router) ListRooms() []RoomSummary {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	out := make([]RoomSummary, 0, len(rt.sessions))
	for _, sess := range rt.sessions {
		s, _ := sess.Store.Snapshot()
		if s == nil {
			continue
		}
		if s.Status != state.Unseated && s.Status != state.Seated {
			continue
		}
		count := 0
		for _, p := range s.Players {
			if p != nil {
				count++
			}
		}
		out = append(out, RoomSummary{Code: sess.Code, Status: s.Status, PlayerCount: count})
	}
	return out
}
