package reducer

import (
	"fmt"

	"nightwatch/engine/resolver"
	"nightwatch/engine/schema"
	"nightwatch/engine/state"
)

// Reduce applies one StateAction to s, returning a new GameState. s is
// never mutated. The default branch is an exhaustiveness assertion: a
// StateAction variant added to this package without a case here panics
// instead of silently no-opping.
func Reduce(s *state.GameState, action StateAction) *state.GameState {
	next := s.Clone()

	switch a := action.(type) {
	case AssignRoles:
		applyAssignRoles(next, a)
	case StartNight:
		applyStartNight(next, a)
	case AdvanceToNextAction:
		applyAdvance(next, a)
	case EndNight:
		applyEndNight(next, a)
	case RestartGame:
		applyRestart(next, a)
	case ApplyResolverResult:
		applyResolverResult(next, a)
	case PlayerViewedRole:
		applyPlayerViewedRole(next, a)
	case UpdateTemplate:
		applyUpdateTemplate(next, a)
	case ActionRejected:
		next.ActionRejected = &a.Notice
	case SetAudioPlaying:
		next.IsAudioPlaying = a.Playing
	case SetWitchContext:
		ctx := a.Context
		next.WitchContext = &ctx
	case SetConfirmStatus:
		ctx := a.Context
		next.ConfirmStatus = &ctx
	case SetUIHint:
		next.UICurrentActorHint = a.Hint
	case SetPendingAudioEffects:
		next.PendingAudioEffects = append([]state.AudioEffect(nil), a.Effects...)
	case JoinPlayer:
		applyJoin(next, a)
	case LeavePlayer:
		applyLeave(next, a)
	case SetWolfRobotHunterStatusViewed:
		next.WolfRobotHunterStatusViewed = true
	case FillWithBots:
		applyFillWithBots(next, a)
	case RecordProtocolAction:
		next.Actions = append(next.Actions, a.Action)
	case SetWolfVoteDeadline:
		next.WolfVoteDeadline = a.Deadline
	case SetPendingRevealAcks:
		m := make(map[string]bool, len(a.Keys))
		for _, k := range a.Keys {
			m[k] = true
		}
		next.PendingRevealAcks = m
	case AckReveal:
		if next.PendingRevealAcks != nil {
			delete(next.PendingRevealAcks, a.Key)
		}
	default:
		panic(fmt.Sprintf("reducer: unhandled StateAction %T", action))
	}

	return next
}

func applyAssignRoles(s *state.GameState, a AssignRoles) {
	s.TemplateRoles = a.TemplateRoles
	for seat, p := range s.Players {
		if p == nil {
			continue
		}
		p.HasViewedRole = false
		if role, ok := a.Assignments[seat]; ok {
			p.Role = role
		}
	}
	s.SeerLabelMap = a.SeerLabelMap
	s.Status = state.Assigned
}

func applyStartNight(s *state.GameState, a StartNight) {
	s.Status = state.Ongoing
	s.CurrentStepIndex = a.StepIndex
	id := a.StepID
	s.CurrentStepID = &id
	s.Actions = nil
	s.CurrentNightResults = state.NightResults{}
	s.LastNightDeaths = nil
}

func applyAdvance(s *state.GameState, a AdvanceToNextAction) {
	s.CurrentStepIndex = a.NextStepIndex
	s.CurrentStepID = a.NextStepID
	s.WitchContext = nil
	s.ConfirmStatus = nil
	// Reveal slots are intentionally preserved here so clients have time
	// to display them (spec.md §4.6).
}

func applyEndNight(s *state.GameState, a EndNight) {
	s.Status = state.Ended
	s.LastNightDeaths = append([]int(nil), a.Deaths...)
	s.CurrentStepIndex = -1
	s.CurrentStepID = nil
	s.IsAudioPlaying = false
	s.WolfVoteDeadline = nil
}

func applyRestart(s *state.GameState, a RestartGame) {
	s.Status = state.Seated
	for _, p := range s.Players {
		if p == nil {
			continue
		}
		p.Role = ""
		p.HasViewedRole = false
	}
	s.CurrentStepIndex = -1
	s.CurrentStepID = nil
	s.Actions = nil
	s.CurrentNightResults = state.NightResults{}
	s.LastNightDeaths = nil
	s.WolfVoteDeadline = nil
	s.PendingAudioEffects = nil
	s.PendingRevealAcks = nil
	s.WolfKillDisabled = false
	s.NightmareBlockedSeat = nil
	s.WolfRobotContext = nil
	s.WolfRobotHunterStatusViewed = false
	s.SeerReveal = nil
	s.PsychicReveal = nil
	s.GargoyleReveal = nil
	s.WolfRobotReveal = nil
	s.MirrorSeerReveal = nil
	s.DrunkSeerReveal = nil
	s.PureWhiteReveal = nil
	s.WolfWitchReveal = nil
	s.WitchContext = nil
	s.ConfirmStatus = nil
	s.UICurrentActorHint = nil
	s.SeerLabelMap = nil
	s.RoleRevealRandomNonce = a.Nonce
	s.ResolvedRoleRevealAnimation = ""
	s.ActionRejected = nil
}

func applyResolverResult(s *state.GameState, a ApplyResolverResult) {
	u := a.Updates
	nr := &s.CurrentNightResults

	if u.SavedSeat != nil {
		nr.SavedSeat = u.SavedSeat
	}
	if u.PoisonedSeat != nil {
		nr.PoisonedSeat = u.PoisonedSeat
	}
	if u.GuardedSeat != nil {
		nr.GuardedSeat = u.GuardedSeat
	}
	if u.SwappedSeats != nil {
		nr.SwappedSeats = u.SwappedSeats
	}
	if u.BlockedSeat != nil {
		nr.BlockedSeat = u.BlockedSeat
		s.NightmareBlockedSeat = u.BlockedSeat
	}
	if u.WolfKillDisabled != nil {
		s.WolfKillDisabled = *u.WolfKillDisabled
	}
	if u.HypnotizedSeats != nil {
		nr.HypnotizedSeats = u.HypnotizedSeats
	}
	if u.CharmedSeat != nil {
		nr.CharmedSeat = u.CharmedSeat
	}
	if u.DreamTargetSeat != nil {
		nr.DreamcatcherSeat = u.DreamTargetSeat
	}
	if u.WolfRobotContext != nil {
		s.WolfRobotContext = u.WolfRobotContext
	}
	if u.WolfVote != nil {
		if nr.WolfVotesBySeat == nil {
			nr.WolfVotesBySeat = make(map[int]int)
		}
		nr.WolfVotesBySeat[u.WolfVote.Seat] = u.WolfVote.Target
	}

	if a.Reveal != nil {
		applyReveal(s, a.Reveal)
	}
}

func applyReveal(s *state.GameState, r *resolver.Reveal) {
	switch r.Kind {
	case schema.RevealSeer:
		s.SeerReveal = r.Single
	case schema.RevealPsychic:
		s.PsychicReveal = r.Single
	case schema.RevealGargoyle:
		s.GargoyleReveal = r.Multi
	case schema.RevealWolfRobot:
		s.WolfRobotReveal = &state.WolfRobotRevealSlot{LearnedRoleID: r.WolfRobotLearned}
	case schema.RevealMirrorSeer:
		s.MirrorSeerReveal = r.Single
	case schema.RevealDrunkSeer:
		s.DrunkSeerReveal = r.Single
	case schema.RevealPureWhite:
		s.PureWhiteReveal = r.Single
	case schema.RevealWolfWitch:
		s.WolfWitchReveal = r.Single
	}
}

func applyPlayerViewedRole(s *state.GameState, a PlayerViewedRole) {
	if a.Seat < 0 || a.Seat >= len(s.Players) || s.Players[a.Seat] == nil {
		panic("reducer: PLAYER_VIEWED_ROLE on an empty seat")
	}
	s.Players[a.Seat].HasViewedRole = true

	if s.Status == state.Assigned && allViewed(s.Players) {
		s.Status = state.Ready
	}
}

func allViewed(players []*state.Player) bool {
	for _, p := range players {
		if p == nil {
			continue
		}
		if !p.HasViewedRole {
			return false
		}
	}
	return true
}

func applyUpdateTemplate(s *state.GameState, a UpdateTemplate) {
	n := len(a.TemplateRoles)
	players := make([]*state.Player, n)
	copy(players, s.Players)
	for seat, p := range players {
		if p == nil {
			continue
		}
		p.Role = ""
		p.HasViewedRole = false
		p.SeatNumber = seat
	}
	s.Players = players
	s.TemplateRoles = a.TemplateRoles

	if s.Status == state.Unseated || s.Status == state.Seated {
		if seatsFull(players) {
			s.Status = state.Seated
		} else {
			s.Status = state.Unseated
		}
	}
}

func seatsFull(players []*state.Player) bool {
	if len(players) == 0 {
		return false
	}
	for _, p := range players {
		if p == nil {
			return false
		}
	}
	return true
}

func applyJoin(s *state.GameState, a JoinPlayer) {
	if a.Seat < 0 || a.Seat >= len(s.Players) {
		panic("reducer: JOIN_PLAYER on an out-of-range seat")
	}
	s.Players[a.Seat] = &state.Player{
		UID:         a.UID,
		SeatNumber:  a.Seat,
		DisplayName: a.DisplayName,
		AvatarURL:   a.AvatarURL,
		IsBot:       a.IsBot,
	}
	if seatsFull(s.Players) {
		s.Status = state.Seated
	}
}

func applyLeave(s *state.GameState, a LeavePlayer) {
	if a.Seat < 0 || a.Seat >= len(s.Players) {
		panic("reducer: LEAVE_PLAYER on an out-of-range seat")
	}
	s.Players[a.Seat] = nil
	if s.Status == state.Seated {
		s.Status = state.Unseated
	}
}

func applyFillWithBots(s *state.GameState, a FillWithBots) {
	s.DebugMode.BotsEnabled = true
	i := 0
	for seat, p := range s.Players {
		if p != nil {
			continue
		}
		name := fmt.Sprintf("Bot %d", seat+1)
		if i < len(a.DisplayNames) {
			name = a.DisplayNames[i]
		}
		s.Players[seat] = &state.Player{
			UID:         "bot-" + fmt.Sprint(seat),
			SeatNumber:  seat,
			DisplayName: name,
			IsBot:       true,
		}
		i++
	}
	if seatsFull(s.Players) {
		s.Status = state.Seated
	}
}
