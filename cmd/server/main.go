package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"nightwatch/api/handlers"
	"nightwatch/api/middleware"
	"nightwatch/engine/handler"
	"nightwatch/engine/progression"
	"nightwatch/engine/votes"
	"nightwatch/game"
	"nightwatch/internal/config"
)

func main() {
	cfg := config.Load()
	votes.WolfVoteCountdownMS = cfg.WolfVoteCountdownMS
	progression.MaxLoops = cfg.MaxProgressionLoops
	handlers.Clock = func() int64 { return time.Now().UnixMilli() }
	handler.SetClock(handlers.Clock)

	router := mux.NewRouter()
	rt := game.NewRouter()

	router.HandleFunc("/ws/rooms/{code}", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleGameWebSocket(w, r, rt)
	})

	router.HandleFunc("/api/logs", middleware.CORS(handlers.HandleClientLogs)).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/rooms", middleware.CORS(handlers.HandleListRooms(rt))).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/rooms", middleware.CORS(handlers.HandleCreateRoom(rt))).Methods("POST", "OPTIONS")

	fmt.Printf("Server starting on port %d...\n", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), router); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
