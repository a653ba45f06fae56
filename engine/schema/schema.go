// Package schema holds the declarative action-schema registry and the
// authoritative night-1 step table. Schemas describe the *shape* of an
// action (its kind, target constraints, UI hints); they never contain
// behavior — behavior lives in engine/resolver, keyed by the same id.
package schema

import "nightwatch/engine/roles"

// ID identifies an action schema, and doubles as the Step identifier
// the night-plan builder and progression driver dispatch on.
type ID string

const (
	GuardProtect          ID = "guardProtect"
	WitchAction            ID = "witchAction"
	SeerCheck              ID = "seerCheck"
	MagicianSwap           ID = "magicianSwap"
	WolfKill               ID = "wolfKill"
	NightmareBlock         ID = "nightmareBlock"
	WolfRobotLearn         ID = "wolfRobotLearn"
	PiperHypnotize         ID = "piperHypnotize"
	PiperHypnotizedReveal  ID = "piperHypnotizedReveal"
	DarkWolfKingConfirm    ID = "darkWolfKingConfirm"
	HunterConfirm          ID = "hunterConfirm"
	DreamcatcherProtect    ID = "dreamcatcherProtect"
	WolfQueenLink          ID = "wolfQueenLink"
	PsychicCheck           ID = "psychicCheck"
	GargoyleCheck          ID = "gargoyleCheck"
	PureWhiteCheck         ID = "pureWhiteCheck"
	WolfWitchCheck         ID = "wolfWitchCheck"
)

// Kind is the discriminant of an action schema's shape.
type Kind string

const (
	KindChooseSeat      Kind = "chooseSeat"
	KindChooseMultiSeat Kind = "chooseMultiSeat"
	KindCompound        Kind = "compound"
	KindConfirm         Kind = "confirm"
	KindWolfVote        Kind = "wolfVote"
	KindGroupConfirm    Kind = "groupConfirm"
)

// Constraint is a named target-validity rule, evaluated by
// engine/schema.Validate against a candidate target.
type Constraint string

const (
	NotSelf       Constraint = "NotSelf"
	NotWolfFaction Constraint = "NotWolfFaction"
)

// RevealKind labels which reveal slot a schema writes into, when it has
// one. Empty means the schema produces no persistent reveal.
type RevealKind string

const (
	RevealSeer       RevealKind = "seerReveal"
	RevealPsychic    RevealKind = "psychicReveal"
	RevealGargoyle   RevealKind = "gargoyleReveal"
	RevealWolfRobot  RevealKind = "wolfRobotReveal"
	RevealMirrorSeer RevealKind = "mirrorSeerReveal"
	RevealDrunkSeer  RevealKind = "drunkSeerReveal"
	RevealPureWhite  RevealKind = "pureWhiteReveal"
	RevealWolfWitch  RevealKind = "wolfWitchReveal"
)

// UI carries display-only hints; the engine never branches on these.
type UI struct {
	Prompt          string
	ConfirmTitle    string
	ConfirmText     string
	RevealKind      RevealKind
	BlockedMessage  string
}

// SubStep is one leg of a compound schema (e.g. witchAction's save/poison).
type SubStep struct {
	ID          string
	Kind        Kind
	Constraints []Constraint
}

// ActionSchema is the full declarative description of one schema id.
type ActionSchema struct {
	ID          ID
	Kind        Kind
	Constraints []Constraint
	CanSkip     bool
	MinTargets  int
	MaxTargets  int
	Meeting     bool // true for shared-visibility schemas such as wolfVote
	SubSteps    []SubStep
	UI          UI
}

// Registry is the full table of action schemas, keyed by id.
var Registry = map[ID]ActionSchema{
	GuardProtect: {
		ID: GuardProtect, Kind: KindChooseSeat, CanSkip: true,
		MinTargets: 1, MaxTargets: 1,
		UI: UI{Prompt: "选择今晚要守护的座位"},
	},
	WitchAction: {
		ID: WitchAction, Kind: KindCompound, CanSkip: true,
		SubSteps: []SubStep{
			{ID: "save", Kind: KindConfirm, Constraints: []Constraint{NotSelf}},
			{ID: "poison", Kind: KindChooseSeat},
		},
		UI: UI{Prompt: "使用解药或毒药"},
	},
	SeerCheck: {
		ID: SeerCheck, Kind: KindChooseSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 1,
		UI: UI{Prompt: "选择要查验的座位", RevealKind: RevealSeer},
	},
	MagicianSwap: {
		ID: MagicianSwap, Kind: KindChooseMultiSeat, CanSkip: true,
		MinTargets: 2, MaxTargets: 2,
		UI: UI{Prompt: "选择两个座位互换角色"},
	},
	WolfKill: {
		ID: WolfKill, Kind: KindWolfVote, CanSkip: false,
		MinTargets: 0, MaxTargets: 1,
		Meeting: true,
		UI:      UI{Prompt: "选择今晚要击杀的座位", BlockedMessage: "wolf_kill_disabled"},
	},
	NightmareBlock: {
		ID: NightmareBlock, Kind: KindChooseSeat, CanSkip: true,
		MinTargets: 1, MaxTargets: 1,
		Meeting: true,
		UI:      UI{Prompt: "选择要禁用技能的座位"},
	},
	WolfRobotLearn: {
		ID: WolfRobotLearn, Kind: KindChooseSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 1,
		Meeting: true,
		UI:      UI{Prompt: "选择要学习身份的座位", RevealKind: RevealWolfRobot},
	},
	PiperHypnotize: {
		ID: PiperHypnotize, Kind: KindChooseMultiSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 2,
		UI: UI{Prompt: "选择要迷惑的座位"},
	},
	PiperHypnotizedReveal: {
		ID: PiperHypnotizedReveal, Kind: KindGroupConfirm, CanSkip: false,
		UI: UI{Prompt: "被迷惑的玩家请确认"},
	},
	DarkWolfKingConfirm: {
		ID: DarkWolfKingConfirm, Kind: KindConfirm, CanSkip: false,
		UI: UI{Prompt: "黑狼王确认"},
	},
	HunterConfirm: {
		ID: HunterConfirm, Kind: KindConfirm, CanSkip: false,
		UI: UI{Prompt: "猎人确认"},
	},
	DreamcatcherProtect: {
		ID: DreamcatcherProtect, Kind: KindChooseSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 1, Constraints: []Constraint{NotSelf},
		UI: UI{Prompt: "选择今晚要摄梦的座位"},
	},
	WolfQueenLink: {
		ID: WolfQueenLink, Kind: KindChooseSeat, CanSkip: true,
		MinTargets: 1, MaxTargets: 1, Constraints: []Constraint{NotWolfFaction},
		UI: UI{Prompt: "选择要魅惑的座位"},
	},
	PsychicCheck: {
		ID: PsychicCheck, Kind: KindChooseSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 1,
		UI: UI{Prompt: "选择要查验的座位", RevealKind: RevealPsychic},
	},
	GargoyleCheck: {
		ID: GargoyleCheck, Kind: KindChooseMultiSeat, CanSkip: false,
		MinTargets: 2, MaxTargets: 2,
		UI: UI{Prompt: "选择两个座位查验", RevealKind: RevealGargoyle},
	},
	PureWhiteCheck: {
		ID: PureWhiteCheck, Kind: KindChooseSeat, CanSkip: false,
		MinTargets: 1, MaxTargets: 1,
		UI: UI{Prompt: "选择要查验的座位", RevealKind: RevealPureWhite},
	},
	WolfWitchCheck: {
		ID: WolfWitchCheck, Kind: KindChooseSeat, CanSkip: true,
		MinTargets: 1, MaxTargets: 1,
		Meeting: true,
		UI:      UI{Prompt: "选择要查验的座位", RevealKind: RevealWolfWitch},
	},
}

// Get fetches a schema by id, reporting whether it is known.
func Get(id ID) (ActionSchema, bool) {
	s, ok := Registry[id]
	return s, ok
}

// StepDescriptor is one entry of the canonical night-1 order: which role
// acts, which schema it runs, and the audio key it plays.
type StepDescriptor struct {
	RoleID    roles.ID
	SchemaID  ID
	AudioKey  string
	AudioEnd  string
}

// NightStepTable is the ordered, authoritative night-1 sequence. The
// wolfKill entry's RoleID is Wolf but it is included whenever any
// participatesInWolfVote role is templated in — see nightplan.Build.
var NightStepTable = []StepDescriptor{
	{RoleID: roles.Nightmare, SchemaID: schemaOrDefault(NightmareBlock), AudioKey: "nightmare", AudioEnd: "nightmare_end"},
	{RoleID: roles.Magician, SchemaID: MagicianSwap, AudioKey: "magician", AudioEnd: "magician_end"},
	{RoleID: roles.WolfRobot, SchemaID: WolfRobotLearn, AudioKey: "wolf_robot", AudioEnd: "wolf_robot_end"},
	{RoleID: roles.Wolf, SchemaID: WolfKill, AudioKey: "wolf", AudioEnd: "wolf_end"},
	{RoleID: roles.WolfQueen, SchemaID: WolfQueenLink, AudioKey: "wolf_queen", AudioEnd: "wolf_queen_end"},
	{RoleID: roles.WolfWitch, SchemaID: WolfWitchCheck, AudioKey: "wolf_witch", AudioEnd: "wolf_witch_end"},
	{RoleID: roles.Guard, SchemaID: GuardProtect, AudioKey: "guard", AudioEnd: "guard_end"},
	{RoleID: roles.Witch, SchemaID: WitchAction, AudioKey: "witch", AudioEnd: "witch_end"},
	{RoleID: roles.Seer, SchemaID: SeerCheck, AudioKey: "seer", AudioEnd: "seer_end"},
	{RoleID: roles.MirrorSeer, SchemaID: SeerCheck, AudioKey: "mirrorSeer", AudioEnd: "mirrorSeer_end"},
	{RoleID: roles.DrunkSeer, SchemaID: SeerCheck, AudioKey: "drunkSeer", AudioEnd: "drunkSeer_end"},
	{RoleID: roles.Psychic, SchemaID: PsychicCheck, AudioKey: "psychic", AudioEnd: "psychic_end"},
	{RoleID: roles.Gargoyle, SchemaID: GargoyleCheck, AudioKey: "gargoyle", AudioEnd: "gargoyle_end"},
	{RoleID: roles.PureWhite, SchemaID: PureWhiteCheck, AudioKey: "pureWhite", AudioEnd: "pureWhite_end"},
	{RoleID: roles.Dreamcatcher, SchemaID: DreamcatcherProtect, AudioKey: "dreamcatcher", AudioEnd: "dreamcatcher_end"},
	{RoleID: roles.Piper, SchemaID: PiperHypnotize, AudioKey: "piper", AudioEnd: "piper_end"},
	{RoleID: roles.Piper, SchemaID: PiperHypnotizedReveal, AudioKey: "piper_hypnotized", AudioEnd: "piper_hypnotized_end"},
	{RoleID: roles.DarkWolfKing, SchemaID: DarkWolfKingConfirm, AudioKey: "dark_wolf_king", AudioEnd: "dark_wolf_king_end"},
	{RoleID: roles.Hunter, SchemaID: HunterConfirm, AudioKey: "hunter", AudioEnd: "hunter_end"},
}

// schemaOrDefault exists only so the table above reads as one literal
// pass over IDs declared above it, with no forward references.
func schemaOrDefault(id ID) ID { return id }

// Validate evaluates a constraint list against a candidate target.
// It fails fast (panics) on an unknown constraint tag, since the
// constraint table is a closed, compile-time-known set.
func Validate(constraints []Constraint, actorSeat, target int, teamOf func(seat int) (roles.Team, bool)) (valid bool, rejectReason string) {
	for _, c := range constraints {
		switch c {
		case NotSelf:
			if target == actorSeat {
				return false, "not_self"
			}
		case NotWolfFaction:
			team, ok := teamOf(target)
			if ok && team == roles.TeamWolf {
				return false, "target_is_wolf_faction"
			}
		default:
			panic("schema: unknown constraint " + string(c))
		}
	}
	return true, ""
}
