package handler

import (
	"crypto/rand"
	"math/big"

	"nightwatch/engine/nightplan"
	"nightwatch/engine/reducer"
	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// HandleJoin seats a player (human or bot) into an open seat, per
// spec.md §4.1.
func HandleJoin(s *state.GameState, seat int, uid, displayName, avatarURL string, isBot bool) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if s.Status != state.Unseated && s.Status != state.Seated {
		return rejected(ReasonGameInProgress)
	}
	if seat < 0 || seat >= len(s.Players) {
		return rejected(ReasonInvalidSeat)
	}
	if s.Players[seat] != nil {
		return rejected(ReasonSeatTaken)
	}

	return accepted(reducer.JoinPlayer{
		Seat:        seat,
		UID:         uid,
		DisplayName: displayName,
		AvatarURL:   avatarURL,
		IsBot:       isBot,
	})
}

// HandleLeave vacates a seat, per spec.md §4.1.
func HandleLeave(s *state.GameState, seat int) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if seat < 0 || seat >= len(s.Players) {
		return rejected(ReasonInvalidSeat)
	}
	if s.Players[seat] == nil {
		return rejected(ReasonNotSeated)
	}
	return accepted(reducer.LeavePlayer{Seat: seat})
}

// HandleUpdateTemplate lets the host rewrite the seat template before
// roles are assigned, per spec.md §4.2.
func HandleUpdateTemplate(s *state.GameState, requestUID string, templateRoles []roles.ID) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if s.Status == state.Ongoing {
		return rejected(ReasonGameInProgress)
	}
	for _, id := range templateRoles {
		if _, ok := roles.Get(id); !ok {
			return rejected(ReasonInvalidAction)
		}
	}
	return accepted(reducer.UpdateTemplate{TemplateRoles: templateRoles})
}

// HandleFillWithBots seats synthetic bots into every open seat, per
// spec.md §4.1's debug-mode provision.
func HandleFillWithBots(s *state.GameState, requestUID string, displayNames []string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if s.Status == state.Ongoing {
		return rejected(ReasonGameInProgress)
	}
	return accepted(reducer.FillWithBots{DisplayNames: displayNames})
}

// HandleAssignRoles shuffles the template's roles across occupied seats
// and assigns the seer-family label map, per spec.md §4.3. shuffle is
// injected so tests can supply a deterministic permutation; the package
// default is a Fisher-Yates shuffle keyed off a secure RNG, which the
// server wiring leaves in place (see engine/handler.SetRoleShuffle).
func HandleAssignRoles(s *state.GameState, requestUID string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if ok, reason := gateStatus(s, state.Seated); !ok {
		return rejected(reason)
	}
	if len(s.TemplateRoles) != len(s.Players) {
		return rejected(ReasonInvalidAction)
	}

	shuffled := append([]roles.ID(nil), s.TemplateRoles...)
	roleShuffle(shuffled)

	assignments := make(map[int]roles.ID, len(shuffled))
	for seat, p := range s.Players {
		if p == nil {
			continue
		}
		assignments[seat] = shuffled[seat]
	}

	return accepted(reducer.AssignRoles{
		TemplateRoles: s.TemplateRoles,
		Assignments:   assignments,
		SeerLabelMap:  nightplan.AssignSeerLabels(s.TemplateRoles),
	})
}

// roleShuffle is the production Fisher-Yates permutation, backed by
// crypto/rand per spec.md §5's requirement that role assignment be
// unpredictable even to the host operator — no ecosystem RNG library in
// the pack targets this single-shuffle use case, so this is the one
// legitimate stdlib-only seam (see DESIGN.md). It is a package var so
// tests can swap in a fixed permutation.
var roleShuffle = func(ids []roles.ID) {
	for i := len(ids) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			continue
		}
		j := int(jBig.Int64())
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// SetRoleShuffle overrides the role-shuffle function, for tests that need
// a deterministic permutation.
func SetRoleShuffle(fn func([]roles.ID)) {
	roleShuffle = fn
}

// HandlePlayerViewedRole flips a seat's hasViewedRole flag, per
// spec.md §4.3; the reducer promotes Assigned->Ready once every seat has
// viewed.
func HandlePlayerViewedRole(s *state.GameState, seat int) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if seat < 0 || seat >= len(s.Players) || s.Players[seat] == nil {
		return rejected(ReasonInvalidSeat)
	}
	if ok, reason := gateStatus(s, state.Assigned); !ok {
		return rejected(reason)
	}
	return accepted(reducer.PlayerViewedRole{Seat: seat})
}

// HandleStartNight transitions Ready->Ongoing and enters the plan's first
// step, per spec.md §4.4.
func HandleStartNight(s *state.GameState, requestUID string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	if ok, reason := gateStatus(s, state.Ready); !ok {
		return rejected(reason)
	}

	plan, err := nightplan.Build(s.TemplateRoles, s.SeerLabelMap)
	if err != nil || len(plan.Steps) == 0 {
		return rejected(ReasonInvalidAction)
	}

	first := plan.Steps[0]
	return accepted(
		reducer.StartNight{StepIndex: 0, StepID: first.SchemaID},
		reducer.SetPendingAudioEffects{Effects: []state.AudioEffect{{AudioKey: first.AudioKey}}},
	)
}

// HandleRestartGame returns the game to Seated, per spec.md §4.9.
// nonce is a caller-supplied random token since the engine never reads
// a randomness source on its own for broadcast-visible state.
func HandleRestartGame(s *state.GameState, requestUID string, nonce string) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	if ok, reason := gateHostOnly(s, requestUID); !ok {
		return rejected(reason)
	}
	return accepted(reducer.RestartGame{Nonce: nonce})
}

// HandleRevealAck clears one pending groupConfirm ack key
// (piperHypnotizedReveal), per spec.md §4.6.
func HandleRevealAck(s *state.GameState, seat int, schemaID schema.ID) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	key := ackKeyFor(schemaID, seat)
	if s.PendingRevealAcks == nil || !s.PendingRevealAcks[key] {
		return rejected(ReasonInvalidAction)
	}
	return accepted(reducer.AckReveal{Key: key})
}

// HandleWolfRobotHunterStatusViewed acknowledges the wolfRobot player has
// seen their disguise-learned-hunter status, clearing the gate
// gateWolfRobotHunterAck enforces before progression may continue.
func HandleWolfRobotHunterStatusViewed(s *state.GameState, seat int) Result {
	if ok, reason := gateStatePresent(s); !ok {
		return rejected(reason)
	}
	roleID, ok := s.RoleAtSeat(seat)
	if !ok || roleID != roles.WolfRobot {
		return rejected(ReasonNotSelf)
	}
	if s.WolfRobotReveal == nil || s.WolfRobotReveal.LearnedRoleID != roles.Hunter {
		return rejected(ReasonNotLearnedHunter)
	}
	return accepted(reducer.SetWolfRobotHunterStatusViewed{})
}
