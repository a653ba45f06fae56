package resolver

import (
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// ResolveWolfRobotLearn writes wolfRobotContext and a reveal carrying the
// learned role id; every identity-check resolver downstream reads that
// context through identity.ResolveRoleForChecks.
func ResolveWolfRobotLearn(ctx Context, in Input) Result {
	if in.Target == nil {
		return reject("no_target")
	}
	target := *in.Target
	learnedRole, ok := ctx.State.RoleAtSeat(target)
	if !ok {
		return reject("invalid_target")
	}

	return Result{
		Valid: true,
		Updates: Updates{
			WolfRobotContext: &state.WolfRobotContext{
				LearnedSeat:   target,
				DisguisedRole: learnedRole,
			},
		},
		Reveal: &Reveal{Kind: schema.RevealWolfRobot, WolfRobotLearned: learnedRole},
	}
}
