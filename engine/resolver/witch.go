package resolver

// ResolveWitchAction backs the witchAction compound schema: save and
// poison are independent sub-steps within the one step. Save targets a
// fixed seat (the night's wolf-kill victim, from state.WitchContext) and
// is rejected as not_self; poison is an open chooseSeat with no
// constraint of its own, matching the declared SubSteps in
// engine/schema. Skipping both legs is valid (the whole schema
// CanSkip).
func ResolveWitchAction(ctx Context, in Input) Result {
	wc := ctx.State.WitchContext

	var updates Updates
	didSomething := false

	if in.WitchSave {
		if wc == nil {
			return reject("no_witch_context")
		}
		if !wc.CanSave {
			return reject("cannot_save")
		}
		if wc.WolfKillSeat == in.ActorSeat {
			return reject("not_self")
		}
		updates.SavedSeat = intPtr(wc.WolfKillSeat)
		didSomething = true
	}

	if in.WitchPoisonTarget != nil {
		if wc == nil || !wc.CanPoison {
			return reject("cannot_poison")
		}
		updates.PoisonedSeat = intPtr(*in.WitchPoisonTarget)
		didSomething = true
	}

	_ = didSomething // skipping both legs is a valid no-op result
	return Result{Valid: true, Updates: updates}
}
