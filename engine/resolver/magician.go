package resolver

// ResolveMagicianSwap requires exactly two distinct, existing seats.
func ResolveMagicianSwap(ctx Context, in Input) Result {
	if in.Skip {
		return Result{Valid: true}
	}
	if len(in.Targets) != 2 {
		return reject("magician_requires_two_targets")
	}
	a, b := in.Targets[0], in.Targets[1]
	if a == b {
		return reject("targets_must_differ")
	}
	if _, ok := ctx.State.RoleAtSeat(a); !ok {
		return reject("invalid_target")
	}
	if _, ok := ctx.State.RoleAtSeat(b); !ok {
		return reject("invalid_target")
	}
	pair := [2]int{a, b}
	return Result{Valid: true, Updates: Updates{SwappedSeats: &pair}}
}
