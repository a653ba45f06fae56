// Package resolver implements one pure function per schema id: given a
// read-only state slice and an action input, it computes
// {valid, updates, reveal, rejectReason}. Resolvers never perform I/O,
// never read the wall clock, and never mutate their GameState argument.
package resolver

import (
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// Input is the actor-supplied payload a resolver validates and acts on.
// Exactly which fields are populated depends on the schema's Kind.
type Input struct {
	SchemaID  schema.ID
	ActorSeat int
	Target    *int  // chooseSeat, confirm-with-fixed-target
	Targets   []int // chooseMultiSeat
	Confirm   bool  // confirm / groupConfirm kinds
	Skip      bool  // canSkip schemas

	// Compound witchAction payload.
	WitchSave         bool
	WitchPoisonTarget *int
}

// Updates is the typed diff a resolver wants merged into
// currentNightResults (and, for a few fields, the top-level mirrors
// wolfKillDisabled / nightmareBlockedSeat). Nil-pointer fields mean "no
// change"; the reducer uses key-presence semantics so a pointer to 0 is
// a real write, not an absence.
type Updates struct {
	SavedSeat        *int
	PoisonedSeat     *int
	GuardedSeat      *int
	SwappedSeats     *[2]int
	BlockedSeat      *int
	WolfKillDisabled *bool
	HypnotizedSeats  []int
	CharmedSeat      *int
	DreamTargetSeat  *int
	WolfRobotContext *state.WolfRobotContext
	WolfVote         *WolfVoteUpdate
}

// WolfVoteUpdate is the write produced by a wolfVote-kind resolver: a
// single seat's current ballot (EmptyKillTarget for an empty vote).
type WolfVoteUpdate struct {
	Seat   int
	Target int
}

// Reveal is written into the schema-declared reveal slot and preserved
// across ADVANCE_TO_NEXT_ACTION until END_NIGHT.
type Reveal struct {
	Kind             schema.RevealKind
	Single           *roles.SeerCheckResult
	Multi            []roles.SeerCheckResult
	WolfRobotLearned roles.ID
}

// Result is a resolver's complete, pure output.
type Result struct {
	Valid        bool
	Updates      Updates
	Reveal       *Reveal
	RejectReason string
}

func reject(reason string) Result {
	return Result{Valid: false, RejectReason: reason}
}

// Context is the read-only slice of GameState a resolver needs, plus a
// coin-flip source for drunkSeer's 50/50 inversion. Resolvers never
// receive the wall clock.
type Context struct {
	State *state.GameState
	// CoinFlip reports a fair, cryptographically random bit. Required
	// only by drunkSeer.
	CoinFlip func() bool
}

// Func is the signature every schema id's resolver satisfies.
type Func func(Context, Input) Result

// Registry dispatches a schema id to its resolver function.
var Registry = map[schema.ID]Func{
	schema.GuardProtect:         ResolveGuardProtect,
	schema.WitchAction:          ResolveWitchAction,
	schema.SeerCheck:            ResolveSeerFamilyCheck,
	schema.MagicianSwap:         ResolveMagicianSwap,
	schema.WolfKill:             ResolveWolfKill,
	schema.NightmareBlock:       ResolveNightmareBlock,
	schema.WolfRobotLearn:       ResolveWolfRobotLearn,
	schema.PiperHypnotize:       ResolvePiperHypnotize,
	schema.PiperHypnotizedReveal: ResolvePiperHypnotizedReveal,
	schema.DarkWolfKingConfirm:  ResolveDarkWolfKingConfirm,
	schema.HunterConfirm:        ResolveHunterConfirm,
	schema.DreamcatcherProtect:  ResolveDreamcatcherProtect,
	schema.WolfQueenLink:        ResolveWolfQueenLink,
	schema.PsychicCheck:         ResolveSeerFamilyCheck,
	schema.GargoyleCheck:        ResolveGargoyleCheck,
	schema.PureWhiteCheck:       ResolveSeerFamilyCheck,
	schema.WolfWitchCheck:       ResolveSeerFamilyCheck,
}

// Resolve dispatches schemaID to its resolver, panicking if the id is
// unknown — every schema registered in engine/schema must have a
// resolver; TestRegistryCoverage_EveryNightStepHasAResolver checks this
// for every night-step schema.
func Resolve(id schema.ID, ctx Context, in Input) Result {
	fn, ok := Registry[id]
	if !ok {
		panic("resolver: no resolver registered for schema " + string(id))
	}
	return fn(ctx, in)
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
