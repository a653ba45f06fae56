// Package config loads the engine's small set of environment-tunable
// constants once at startup. The teacher hardcodes its one constant
// (port 8080); this generalizes that same level of ceremony to the
// spec's three tunables rather than pulling in a flags/config library.
package config

import (
	"os"
	"strconv"
)

// Config holds every environment-overridable constant the engine and its
// reference transport shell read at startup.
type Config struct {
	Port                int
	WolfVoteCountdownMS int64
	MaxProgressionLoops int
}

// Defaults mirror the constants named in spec.md: a 5000ms wolf-vote
// countdown and a 20-iteration progression-loop cap.
func Defaults() Config {
	return Config{
		Port:                8080,
		WolfVoteCountdownMS: 5000,
		MaxProgressionLoops: 20,
	}
}

// Load reads PORT, WOLF_VOTE_COUNTDOWN_MS and MAX_PROGRESSION_LOOPS from
// the environment, falling back to Defaults() for anything unset or
// unparseable.
func Load() Config {
	cfg := Defaults()

	if v, ok := getenvInt(os.Getenv("PORT")); ok {
		cfg.Port = v
	}
	if v, ok := getenvInt64(os.Getenv("WOLF_VOTE_COUNTDOWN_MS")); ok {
		cfg.WolfVoteCountdownMS = v
	}
	if v, ok := getenvInt(os.Getenv("MAX_PROGRESSION_LOOPS")); ok {
		cfg.MaxProgressionLoops = v
	}

	return cfg
}

func getenvInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getenvInt64(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
