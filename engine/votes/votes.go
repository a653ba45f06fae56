// Package votes implements the shared wolf-vote protocol described in
// spec.md §4.5: the "all voted" test, the countdown deadline transitions,
// and the tie-break used to resolve a final kill target at END_NIGHT.
package votes

import (
	"sort"

	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// WolfVoteCountdownMS is the deadline window after all wolves have voted.
// A var, not a const, so internal/config can override it from
// WOLF_VOTE_COUNTDOWN_MS at startup.
var WolfVoteCountdownMS int64 = 5000

// Participants returns every seat whose assigned role
// participatesInWolfVote, in ascending seat order.
func Participants(players []*state.Player) []int {
	var out []int
	for i, p := range players {
		if p == nil {
			continue
		}
		if roles.ParticipatesInWolfVote(p.Role) {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// AllVoted is fail-closed: an empty participant set or any unresolved
// participant seat means not-all-voted, never true by vacuous default.
func AllVoted(players []*state.Player, votes map[int]int) bool {
	participants := Participants(players)
	if len(participants) == 0 {
		return false
	}
	for _, seat := range participants {
		if _, voted := votes[seat]; !voted {
			return false
		}
	}
	return true
}

// DeadlineDecision is the boundary-behavior table from spec.md §8: given
// whether all wolves have voted and whether a deadline already exists,
// decide what the deadline should become.
type DeadlineDecision int

const (
	DeadlineNoop DeadlineDecision = iota
	DeadlineSet
	DeadlineClear
)

// DecideDeadline implements: allVoted && no existing deadline => Set;
// allVoted && has deadline => Set (reset); !allVoted && has deadline =>
// Clear; otherwise Noop.
func DecideDeadline(allVoted bool, hasDeadline bool) DeadlineDecision {
	switch {
	case allVoted:
		return DeadlineSet
	case !allVoted && hasDeadline:
		return DeadlineClear
	default:
		return DeadlineNoop
	}
}

// ResolveKillTarget applies the tie-break rule: majority vote wins; ties
// are broken deterministically by lowest targeted seat. Empty-kill
// ballots (state.EmptyKillTarget) are tallied like any other target, so
// an empty-kill majority yields "no target" (ok=false).
func ResolveKillTarget(votesBySeat map[int]int) (target int, ok bool) {
	if len(votesBySeat) == 0 {
		return 0, false
	}

	counts := make(map[int]int)
	for _, t := range votesBySeat {
		counts[t]++
	}

	targets := make([]int, 0, len(counts))
	for t := range counts {
		targets = append(targets, t)
	}
	sort.Ints(targets) // ascending, so the first encountered tie wins — lowest seat

	best := targets[0]
	bestCount := counts[best]
	for _, t := range targets[1:] {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}

	if best == state.EmptyKillTarget {
		return 0, false
	}
	return best, true
}
