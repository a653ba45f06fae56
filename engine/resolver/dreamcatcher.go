package resolver

// ResolveDreamcatcherProtect always protects the dream target. The
// NotSelf constraint is evaluated by the schema.Validate layer before a
// handler ever calls this resolver, so this function only records the
// target.
func ResolveDreamcatcherProtect(ctx Context, in Input) Result {
	if in.Target == nil {
		return reject("no_target")
	}
	return Result{Valid: true, Updates: Updates{DreamTargetSeat: intPtr(*in.Target)}}
}
