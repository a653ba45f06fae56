package resolver

// ResolveGuardProtect has no constraints of its own (the guard may
// protect any seat, including themselves, across nights — this engine
// only ever runs night one, so the usual "can't protect the same seat
// twice in a row" rule never applies); skip is allowed.
func ResolveGuardProtect(ctx Context, in Input) Result {
	if in.Skip || in.Target == nil {
		return Result{Valid: true}
	}
	return Result{Valid: true, Updates: Updates{GuardedSeat: intPtr(*in.Target)}}
}
