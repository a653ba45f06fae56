// Package identity centralizes the one seat/role indirection every
// identity-check resolver (seer, mirrorSeer, drunkSeer, psychic,
// gargoyle, pureWhite, wolfWitch) must use instead of inlining the
// transformation itself (spec.md §9: "do not inline these transformations
// in resolvers").
package identity

import (
	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// ResolveRoleForChecks composes, in order: (1) seat swap via
// currentNightResults.swappedSeats, mirroring the role at each swapped
// seat; (2) wolfRobot disguise, substituting the learned disguise role
// whenever the resolved seat's role is wolfRobot and a wolfRobotContext
// exists. It returns the effective role id an identity check should see
// at the given seat, never the raw Players[seat].Role.
func ResolveRoleForChecks(s *state.GameState, seat int) (roles.ID, bool) {
	effectiveSeat := seat
	if swap := s.CurrentNightResults.SwappedSeats; swap != nil {
		a, b := swap[0], swap[1]
		switch seat {
		case a:
			effectiveSeat = b
		case b:
			effectiveSeat = a
		}
	}

	roleID, ok := s.RoleAtSeat(effectiveSeat)
	if !ok {
		return "", false
	}

	if roleID == roles.WolfRobot && s.WolfRobotContext != nil {
		return s.WolfRobotContext.DisguisedRole, true
	}

	return roleID, true
}

// TeamForChecks is a convenience wrapper returning the team an identity
// check should attribute to seat, after composing swap + disguise.
func TeamForChecks(s *state.GameState, seat int) (roles.Team, bool) {
	roleID, ok := ResolveRoleForChecks(s, seat)
	if !ok {
		return "", false
	}
	role, ok := roles.Get(roleID)
	if !ok {
		return "", false
	}
	return role.Team, true
}
