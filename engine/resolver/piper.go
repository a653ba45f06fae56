package resolver

// ResolvePiperHypnotize accumulates the hypnotized set across the step's
// (possibly several) submissions, deduping and denying any target that
// is already hypnotized from a prior submission.
func ResolvePiperHypnotize(ctx Context, in Input) Result {
	if len(in.Targets) == 0 {
		return reject("no_targets")
	}

	already := make(map[int]bool, len(ctx.State.CurrentNightResults.HypnotizedSeats))
	for _, s := range ctx.State.CurrentNightResults.HypnotizedSeats {
		already[s] = true
	}
	for _, t := range in.Targets {
		if already[t] {
			return reject("already_hypnotized")
		}
	}

	next := append([]int(nil), ctx.State.CurrentNightResults.HypnotizedSeats...)
	seen := make(map[int]bool)
	for _, t := range in.Targets {
		if seen[t] {
			continue
		}
		seen[t] = true
		next = append(next, t)
	}

	return Result{Valid: true, Updates: Updates{HypnotizedSeats: next}}
}

// ResolvePiperHypnotizedReveal is a groupConfirm step. Spec.md §9 treats
// the ack flow as opaque handler-layer state, not a resolver concern, so
// this resolver only acknowledges.
func ResolvePiperHypnotizedReveal(ctx Context, in Input) Result {
	return Result{Valid: true}
}
