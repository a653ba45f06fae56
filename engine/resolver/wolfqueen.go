package resolver

// ResolveWolfQueenLink writes the charmed seat. NotWolfFaction is
// evaluated by schema.Validate before this resolver runs.
func ResolveWolfQueenLink(ctx Context, in Input) Result {
	if in.Skip || in.Target == nil {
		return Result{Valid: true}
	}
	return Result{Valid: true, Updates: Updates{CharmedSeat: intPtr(*in.Target)}}
}
