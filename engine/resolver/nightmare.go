package resolver

import "nightwatch/engine/roles"

// ResolveNightmareBlock writes blockedSeat; when the target's role is a
// wolf, it also sets wolfKillDisabled=true. Night one only — there is no
// multi-night state for this engine to track across.
func ResolveNightmareBlock(ctx Context, in Input) Result {
	if in.Skip || in.Target == nil {
		return Result{Valid: true}
	}
	target := *in.Target
	roleID, ok := ctx.State.RoleAtSeat(target)
	if !ok {
		return reject("invalid_target")
	}

	updates := Updates{BlockedSeat: intPtr(target)}
	if role, ok := roles.Get(roleID); ok && role.Faction == roles.FactionWolf {
		updates.WolfKillDisabled = boolPtr(true)
	}
	return Result{Valid: true, Updates: updates}
}
