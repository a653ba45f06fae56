package resolver

import (
	"nightwatch/engine/identity"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
)

// ResolveSeerFamilyCheck backs seerCheck, psychicCheck, pureWhiteCheck and
// wolfWitchCheck — every single-target identity check. The actor's own
// assigned role (not the schema id, which seerCheck shares across seer,
// mirrorSeer and drunkSeer) decides which reveal slot is written and
// whether the result is inverted:
//   - mirrorSeer always inverts the plain result.
//   - drunkSeer inverts with probability 0.5 via ctx.CoinFlip.
//   - every other identity-check role reveals the plain result.
// All of them read the target's effective role through
// identity.ResolveRoleForChecks, composing seat-swap then wolfRobot
// disguise exactly once, centrally.
func ResolveSeerFamilyCheck(ctx Context, in Input) Result {
	if in.Target == nil {
		return reject("no_target")
	}
	target := *in.Target

	actorRole, ok := ctx.State.RoleAtSeat(in.ActorSeat)
	if !ok {
		return reject("actor_has_no_role")
	}

	team, ok := identity.TeamForChecks(ctx.State, target)
	if !ok {
		return reject("invalid_target")
	}
	plain := roles.SeerCheckResultForTeam(team)

	result := plain
	switch actorRole {
	case roles.MirrorSeer:
		result = invert(plain)
	case roles.DrunkSeer:
		if ctx.CoinFlip != nil && ctx.CoinFlip() {
			result = invert(plain)
		}
	}

	return Result{
		Valid: true,
		Reveal: &Reveal{
			Kind:   revealKindFor(actorRole),
			Single: &result,
		},
	}
}

// ResolveGargoyleCheck is gargoyle's two-target identity check, writing
// both results (in target order) into gargoyleReveal.
func ResolveGargoyleCheck(ctx Context, in Input) Result {
	if len(in.Targets) != 2 {
		return reject("gargoyle_requires_two_targets")
	}

	out := make([]roles.SeerCheckResult, 0, 2)
	for _, t := range in.Targets {
		team, ok := identity.TeamForChecks(ctx.State, t)
		if !ok {
			return reject("invalid_target")
		}
		out = append(out, roles.SeerCheckResultForTeam(team))
	}

	return Result{
		Valid: true,
		Reveal: &Reveal{
			Kind:  schema.RevealGargoyle,
			Multi: out,
		},
	}
}

func invert(r roles.SeerCheckResult) roles.SeerCheckResult {
	if r == roles.ResultWolf {
		return roles.ResultGood
	}
	return roles.ResultWolf
}

func revealKindFor(actorRole roles.ID) schema.RevealKind {
	switch actorRole {
	case roles.Seer:
		return schema.RevealSeer
	case roles.MirrorSeer:
		return schema.RevealMirrorSeer
	case roles.DrunkSeer:
		return schema.RevealDrunkSeer
	case roles.Psychic:
		return schema.RevealPsychic
	case roles.PureWhite:
		return schema.RevealPureWhite
	case roles.WolfWitch:
		return schema.RevealWolfWitch
	default:
		return schema.RevealSeer
	}
}
