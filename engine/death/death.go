// Package death implements the pure night-one death calculator: six
// ordered rules composed over NightActions and a RoleSeatMap, producing
// a sorted set of seats that die.
package death

import (
	"sort"

	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// NightActions is the subset of a night's accumulated facts the death
// calculator needs, independent of GameState's broadcast shape.
type NightActions struct {
	WolfKillTarget       int // seat, or -1 for no kill (empty vote / disabled)
	HasWolfKill          bool
	IsWolfBlockedByNightmare bool
	GuardedSeat          *int
	WitchSavedSeat       *int
	WitchPoisonedSeat    *int
	IsWitchBlocked       bool
	GuardSeat            *int // the guard's own effective seat, for nightmare-nullification
	WitchSeat            *int // the witch's own effective seat, for nightmare-nullification
	NightmareBlockedSeat *int
	SeerCheckedSeat      *int
	MagicianSwap         *[2]int
	WolfQueenDiedLink    bool // wolfQueen's charm partner dies iff wolfQueen dies; computed below instead
	CharmedSeat          *int
	DreamTargetSeat      *int
}

// RoleSeatMap is the scan of effective seats and flag-driven seat sets
// the handler builds at END_NIGHT: each role's effective seat after
// seat-swap, plus the sets of seats carrying ImmuneToPoison and
// ReflectsDamage flags.
type RoleSeatMap struct {
	EffectiveSeatOfRole map[roles.ID]int
	PoisonImmuneSeats   map[int]bool
	ReflectsDamageSeats map[int]bool
}

// Calculate composes the six ordered rules from spec.md §4.8. Order
// matters: later rules read the death set earlier rules produced.
func Calculate(na NightActions, rsm RoleSeatMap) []int {
	dead := make(map[int]bool)

	// Rule 1: wolf kill, with guard + witch interaction.
	if na.HasWolfKill && !na.IsWolfBlockedByNightmare {
		isGuarded := na.GuardedSeat != nil && *na.GuardedSeat == na.WolfKillTarget
		if isGuarded && na.GuardSeat != nil && na.NightmareBlockedSeat != nil && *na.GuardSeat == *na.NightmareBlockedSeat {
			isGuarded = false
		}
		isSaved := na.WitchSavedSeat != nil && *na.WitchSavedSeat == na.WolfKillTarget
		if isSaved && na.WitchSeat != nil && na.NightmareBlockedSeat != nil && *na.WitchSeat == *na.NightmareBlockedSeat {
			isSaved = false
		}
		if (isSaved && isGuarded) || (!isSaved && !isGuarded) {
			dead[na.WolfKillTarget] = true
		}
	}

	// Rule 2: witch poison.
	if na.WitchPoisonedSeat != nil && !na.IsWitchBlocked {
		target := *na.WitchPoisonedSeat
		if !rsm.PoisonImmuneSeats[target] {
			dead[target] = true
		}
	}

	// Rule 3: wolf queen link — charmed seat dies iff wolfQueen died.
	if wqSeat, ok := rsm.EffectiveSeatOfRole[roles.WolfQueen]; ok && dead[wqSeat] && na.CharmedSeat != nil {
		dead[*na.CharmedSeat] = true
	}

	// Rule 4: dreamcatcher — always protects the dream target; if the
	// dreamcatcher itself died, the link kills the dream target anyway.
	if na.DreamTargetSeat != nil {
		target := *na.DreamTargetSeat
		dcSeat, dcKnown := rsm.EffectiveSeatOfRole[roles.Dreamcatcher]
		if dead[target] {
			delete(dead, target)
		}
		if dcKnown && dead[dcSeat] {
			dead[target] = true
		}
	}

	// Rule 5: reflection — a reflectsDamage target kills back the seer
	// who checked it, or the (unblocked) witch who poisoned it.
	if na.SeerCheckedSeat != nil && rsm.ReflectsDamageSeats[*na.SeerCheckedSeat] {
		if seerSeat, ok := rsm.EffectiveSeatOfRole[roles.Seer]; ok {
			dead[seerSeat] = true
		}
	}
	if na.WitchPoisonedSeat != nil && !na.IsWitchBlocked && rsm.ReflectsDamageSeats[*na.WitchPoisonedSeat] {
		if witchSeat, ok := rsm.EffectiveSeatOfRole[roles.Witch]; ok {
			dead[witchSeat] = true
		}
	}

	// Rule 6: magician swap — if exactly one of the swapped pair is
	// dead, swap the deaths between them.
	if na.MagicianSwap != nil {
		a, b := na.MagicianSwap[0], na.MagicianSwap[1]
		aDead, bDead := dead[a], dead[b]
		if aDead != bDead {
			delete(dead, a)
			delete(dead, b)
			if aDead {
				dead[b] = true
			} else {
				dead[a] = true
			}
		}
	}

	out := make([]int, 0, len(dead))
	for seat := range dead {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}

// BuildRoleSeatMap scans players, applying the seat-swap mirror to get
// each role's effective seat, and collects flag-driven seat sets.
func BuildRoleSeatMap(players []*state.Player, swappedSeats *[2]int) RoleSeatMap {
	rsm := RoleSeatMap{
		EffectiveSeatOfRole: make(map[roles.ID]int),
		PoisonImmuneSeats:   make(map[int]bool),
		ReflectsDamageSeats: make(map[int]bool),
	}

	effectiveSeatOf := func(seat int) int {
		if swappedSeats == nil {
			return seat
		}
		a, b := swappedSeats[0], swappedSeats[1]
		switch seat {
		case a:
			return b
		case b:
			return a
		default:
			return seat
		}
	}

	for seat, p := range players {
		if p == nil || p.Role == "" {
			continue
		}
		role, ok := roles.Get(p.Role)
		if !ok {
			continue
		}
		effSeat := effectiveSeatOf(seat)
		rsm.EffectiveSeatOfRole[p.Role] = effSeat
		if role.Flags.ImmuneToPoison {
			rsm.PoisonImmuneSeats[effSeat] = true
		}
		if role.Flags.ReflectsDamage {
			rsm.ReflectsDamageSeats[effSeat] = true
		}
	}

	return rsm
}
