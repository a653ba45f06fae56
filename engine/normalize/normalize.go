// Package normalize implements the Normalizer (spec.md §4.11): Store's
// SetState, ApplySnapshot and ApplyOptimistic pass each state through
// Normalize before holding it; Store.Initialize holds its argument as given.
package normalize

import (
	"strconv"

	"nightwatch/engine/state"
)

// Normalize fails fast (panics) if any required field is missing, and
// canonicalizes wolfVotesBySeat keys to strings for the broadcast shape.
// Every other field is passed through unchanged: the output starts as a
// copy of the whole struct, so a new GameState field is carried over
// without any change here, and no test enumerates the fields.
func Normalize(s *state.GameState) *state.GameState {
	if s == nil {
		panic("normalize: nil state")
	}
	if s.RoomCode == "" {
		panic("normalize: missing roomCode")
	}
	if s.HostUID == "" {
		panic("normalize: missing hostUid")
	}
	if s.Status == "" {
		panic("normalize: missing status")
	}
	out := *s

	if out.Players == nil {
		out.Players = []*state.Player{}
	}
	if out.Actions == nil {
		out.Actions = []state.ProtocolAction{}
	}
	if out.LastNightDeaths == nil {
		out.LastNightDeaths = []int{}
	}
	if out.PendingAudioEffects == nil {
		out.PendingAudioEffects = []state.AudioEffect{}
	}

	out.CurrentNightResults.WolfVotesBySeat = canonicalizeVoteKeys(out.CurrentNightResults.WolfVotesBySeat)

	return &out
}

// canonicalizeVoteKeys is a no-op over the Go map shape (seat ints are
// already the canonical in-process key); it exists to document the
// string-key canonicalization the JSON broadcast encoding performs, and
// to give wolfVotesBySeat one place a future string-keyed wire type would
// be produced from.
func canonicalizeVoteKeys(m map[int]int) map[int]int {
	if m == nil {
		return map[int]int{}
	}
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// VoteKeyString renders a seat key the way the broadcast JSON shape
// requires (spec.md §4.11: "canonicalizes wolfVotesBySeat keys to
// strings").
func VoteKeyString(seat int) string {
	return strconv.Itoa(seat)
}
