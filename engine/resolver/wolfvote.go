package resolver

import (
	"nightwatch/engine/roles"
	"nightwatch/engine/state"
)

// ResolveWolfKill validates and records one wolf's ballot. Only seats
// whose assigned role participatesInWolfVote may submit. A target whose
// role is immune to the wolf kill is rejected outright here — this is
// the "投票失败" (vote failed) rejection the spec's end-to-end scenario 6
// exercises for spiritKnight.
func ResolveWolfKill(ctx Context, in Input) Result {
	actorRole, ok := ctx.State.RoleAtSeat(in.ActorSeat)
	if !ok || !roles.ParticipatesInWolfVote(actorRole) {
		return reject("not_wolf_voter")
	}

	if in.Skip || in.Target == nil {
		return Result{Valid: true, Updates: Updates{
			WolfVote: &WolfVoteUpdate{Seat: in.ActorSeat, Target: state.EmptyKillTarget},
		}}
	}

	target := *in.Target
	if targetRole, ok := ctx.State.RoleAtSeat(target); ok {
		if rd, ok := roles.Get(targetRole); ok && rd.Flags.ImmuneToWolfKill {
			return reject("投票失败：目标对狼人击杀免疫")
		}
	}

	return Result{Valid: true, Updates: Updates{
		WolfVote: &WolfVoteUpdate{Seat: in.ActorSeat, Target: target},
	}}
}
