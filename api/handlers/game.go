package handlers

import (
	"encoding/json"
	"net/http"

	"nightwatch/game"
)

// HandleCreateRoom allocates a new room and seats the requester as host.
// Joining seats and all in-game intents travel over the websocket
// (api/handlers/websocket.go); this is the one HTTP entry point a client
// needs before it has a room code to connect with.
func HandleCreateRoom(rt *game.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			HostUID string `json:"hostUid"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.HostUID == "" {
			http.Error(w, "hostUid is required", http.StatusBadRequest)
			return
		}

		sess := rt.CreateRoom(req.HostUID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"roomCode": sess.Code})
	}
}

// HandleListRooms lists rooms still open to new players.
func HandleListRooms(rt *game.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rt.ListRooms())
	}
}
