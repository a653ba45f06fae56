// Package roles holds the declarative role registry: faction, team, and
// night-behavior flags for every role the engine knows how to seat.
package roles

// ID identifies a role. Roles are referenced by id everywhere else in the
// engine (schemas, night-plan, resolvers) to avoid cyclic ownership.
type ID string

const (
	Wolf         ID = "wolf"
	Villager     ID = "villager"
	Guard        ID = "guard"
	Witch        ID = "witch"
	Seer         ID = "seer"
	Hunter       ID = "hunter"
	DarkWolfKing ID = "darkWolfKing"
	SpiritKnight ID = "spiritKnight"
	Magician     ID = "magician"
	Nightmare    ID = "nightmare"
	WolfRobot    ID = "wolfRobot"
	Piper        ID = "piper"
	Dreamcatcher ID = "dreamcatcher"
	WolfQueen    ID = "wolfQueen"
	MirrorSeer   ID = "mirrorSeer"
	DrunkSeer    ID = "drunkSeer"
	Psychic      ID = "psychic"
	Gargoyle     ID = "gargoyle"
	PureWhite    ID = "pureWhite"
	WolfWitch    ID = "wolfWitch"
)

// Faction is the internal classification used for win conditions and
// constraints such as NotWolfFaction.
type Faction string

const (
	FactionWolf     Faction = "Wolf"
	FactionGod      Faction = "God"
	FactionVillager Faction = "Villager"
	FactionSpecial  Faction = "Special"
)

// Team is the result bucket a seer-family check resolves to. Third-party
// (Special faction) roles count as Good for seer purposes.
type Team string

const (
	TeamWolf Team = "Wolf"
	TeamGood Team = "Good"
)

// SeerCheckResult is the literal string a seer-family reveal carries.
type SeerCheckResult string

const (
	ResultWolf SeerCheckResult = "狼人"
	ResultGood SeerCheckResult = "好人"
)

// WolfMeeting describes a role's participation in the shared wolf meeting.
type WolfMeeting struct {
	CanSeeWolves          bool
	ParticipatesInWolfVote bool
}

// Flags are immunities and special damage behaviors.
type Flags struct {
	ImmuneToWolfKill bool
	ImmuneToPoison   bool
	ReflectsDamage   bool
}

// Night1 describes whether the role has any action at all on night one.
type Night1 struct {
	HasAction bool
}

// Role is a pure declarative record. Role values never hold references to
// other roles; cross-role relationships (wolf-meeting membership, seer
// labeling) are computed from this table, never stored on it.
type Role struct {
	ID          ID
	DisplayName string
	ShortName   string
	Emoji       string
	Faction     Faction
	Team        Team
	Night1      Night1
	WolfMeeting *WolfMeeting // nil for roles outside the wolf meeting
	Flags       Flags
	// DisplayAs, when set, is the role identity this role's seat is
	// presented as to identity-check resolvers absent any other
	// disguise/swap layer (reserved for future disguise-only roles;
	// wolfRobot's disguise is dynamic and lives in GameState.WolfRobotContext
	// instead, per resolveRoleForChecks).
	DisplayAs ID
	// SeerFamily marks roles whose check-style night action shares the
	// seer label map and seer-family audio key rewriting.
	SeerFamily bool
}

// Registry is the full, immutable table of every role the engine supports.
var Registry = map[ID]Role{
	Wolf: {
		ID: Wolf, DisplayName: "狼人", ShortName: "Wolf", Emoji: "🐺",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: true},
	},
	Villager: {
		ID: Villager, DisplayName: "村民", ShortName: "Villager", Emoji: "👤",
		Faction: FactionVillager, Team: TeamGood,
		Night1: Night1{HasAction: false},
	},
	Guard: {
		ID: Guard, DisplayName: "守卫", ShortName: "Guard", Emoji: "🛡️",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	Witch: {
		ID: Witch, DisplayName: "女巫", ShortName: "Witch", Emoji: "🧪",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	Seer: {
		ID: Seer, DisplayName: "预言家", ShortName: "Seer", Emoji: "🔮",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	Hunter: {
		ID: Hunter, DisplayName: "猎人", ShortName: "Hunter", Emoji: "🏹",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	DarkWolfKing: {
		ID: DarkWolfKing, DisplayName: "黑狼王", ShortName: "DarkWolfKing", Emoji: "👑",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: true},
	},
	SpiritKnight: {
		ID: SpiritKnight, DisplayName: "白狼王", ShortName: "SpiritKnight", Emoji: "⚔️",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: false},
		Flags:  Flags{ImmuneToWolfKill: true},
	},
	Magician: {
		ID: Magician, DisplayName: "魔术师", ShortName: "Magician", Emoji: "🎩",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	Nightmare: {
		ID: Nightmare, DisplayName: "梦魇", ShortName: "Nightmare", Emoji: "😈",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: false},
	},
	WolfRobot: {
		ID: WolfRobot, DisplayName: "机械狼", ShortName: "WolfRobot", Emoji: "🤖",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: true},
	},
	Piper: {
		ID: Piper, DisplayName: "吹笛者", ShortName: "Piper", Emoji: "🎺",
		Faction: FactionSpecial, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	Dreamcatcher: {
		ID: Dreamcatcher, DisplayName: "摄梦人", ShortName: "Dreamcatcher", Emoji: "💤",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true},
	},
	WolfQueen: {
		ID: WolfQueen, DisplayName: "狼美人", ShortName: "WolfQueen", Emoji: "👸",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: true},
	},
	MirrorSeer: {
		ID: MirrorSeer, DisplayName: "镜子预言家", ShortName: "MirrorSeer", Emoji: "🪞",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	DrunkSeer: {
		ID: DrunkSeer, DisplayName: "酒鬼预言家", ShortName: "DrunkSeer", Emoji: "🍶",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	Psychic: {
		ID: Psychic, DisplayName: "通灵师", ShortName: "Psychic", Emoji: "👁️",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	Gargoyle: {
		ID: Gargoyle, DisplayName: "石像鬼", ShortName: "Gargoyle", Emoji: "🗿",
		Faction: FactionGod, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	PureWhite: {
		ID: PureWhite, DisplayName: "纯白之女", ShortName: "PureWhite", Emoji: "🤍",
		Faction: FactionSpecial, Team: TeamGood,
		Night1: Night1{HasAction: true}, SeerFamily: true,
	},
	WolfWitch: {
		ID: WolfWitch, DisplayName: "黑女巫", ShortName: "WolfWitch", Emoji: "🖤",
		Faction: FactionWolf, Team: TeamWolf,
		Night1:      Night1{HasAction: true},
		WolfMeeting: &WolfMeeting{CanSeeWolves: true, ParticipatesInWolfVote: false},
		SeerFamily:  true,
	},
}

// Get fetches a role by id, reporting whether it is known.
func Get(id ID) (Role, bool) {
	r, ok := Registry[id]
	return r, ok
}

// MustGet fetches a role by id, panicking on unknown ids. Used only at
// sites that already validated the id came from a trusted table (the
// night-step table, an assigned player's role).
func MustGet(id ID) Role {
	r, ok := Registry[id]
	if !ok {
		panic("roles: unknown role id " + string(id))
	}
	return r
}

// ParticipatesInWolfVote reports whether the seated role takes part in the
// shared wolf-kill vote.
func ParticipatesInWolfVote(id ID) bool {
	r, ok := Registry[id]
	return ok && r.WolfMeeting != nil && r.WolfMeeting.ParticipatesInWolfVote
}

// SeerCheckResultForTeam implements the strictly binary seer rule: wolf
// team yields "狼人", every other team (including Third/Special, which
// counts as good for seer checks) yields "好人".
func SeerCheckResultForTeam(team Team) SeerCheckResult {
	if team == TeamWolf {
		return ResultWolf
	}
	return ResultGood
}
